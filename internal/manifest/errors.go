package manifest

import "errors"

// Sentinel errors for the manifest package
var (
	// ErrDelimiterInValue indicates a field value contains the TOML
	// literal-block delimiter, which has no escape sequence. Serialization
	// fails fast instead of producing corrupt output.
	ErrDelimiterInValue = errors.New("value contains the ''' block delimiter")
)

// Package manifest models the dependency manifest and its badge descriptor,
// and renders them into their textual formats.
//
// A Manifest aggregates the hand-authored project identity (with the
// version resolved from the listfiles stamped in), the always-present
// platform baseline entry, and one Dependency per FetchContent usage in
// encounter order. The listing order is an observable contract of the
// output and is never changed here.
//
// # Renderings
//
// The JSON rendering is a direct encoding/json marshal of the model, so key
// order follows struct declaration order. The TOML rendering is produced by
// EncodeTOML:
//
//	[project]
//	name = "JH-Toolkit"
//	version = "1.3.1"
//	...
//
//	[[dependencies]]
//	name = "fmt"
//	condition = '''
//	CMAKE_BUILD_TYPE=Debug
//	Release builds on Ubuntu, macOS and Windows do not fetch this dependency.'''
//	...
//
// Multi-line values use triple-quoted literal blocks. There is no escape
// for the delimiter itself; a value containing ''' fails serialization with
// ErrDelimiterInValue before anything is written.
package manifest

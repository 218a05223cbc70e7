// Package cmake extracts build metadata from CMake listfiles. It does not
// implement the CMake language; only command statements are recognized, and
// of those only the three the manifest needs:
//
//	set(PROJECT_VERSION 1.3.1)
//	FetchContent_Declare(name GIT_REPOSITORY url GIT_TAG rev)
//	FetchContent_MakeAvailable(name)
//
// Statements are found with an explicit scanner rather than regular
// expressions, so declarations may span lines, arguments may be quoted, and
// `#` comments are skipped. Anything that does not form a command statement
// is ignored without error.
//
// Missing information degrades to the Unknown sentinel instead of failing:
// a missing listfile reads as empty text, an absent version statement
// resolves to Unknown, and a usage with no matching declaration resolves to
// an Unknown repository and tag.
package cmake

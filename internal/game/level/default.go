package level

import _ "embed"

// defaultLevelText is the bundled level used when no path is given on
// the command line.
//
//go:embed default.level
var defaultLevelText string

// Default parses the bundled level.
func Default() (*Level, error) {
	return ParseString(defaultLevelText)
}

// Package timespec parses the compact duration notation used by the
// timer menu: bare digits mean seconds, a trailing "m" means minutes.
package timespec

import (
	"regexp"
	"strconv"
	"strings"
)

var specPattern = regexp.MustCompile(`^([0-9]+)(m?)$`)

// Parse converts a duration spec to seconds. Surrounding whitespace is
// ignored and the unit marker is case-insensitive: "90" is ninety
// seconds, "2m" two minutes. ok is false for anything else so callers
// can give explicit feedback instead of defaulting silently.
func Parse(value string) (seconds int, ok bool) {
	match := specPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(value)))
	if match == nil {
		return 0, false
	}
	seconds, err := strconv.Atoi(match[1])
	if err != nil {
		return 0, false
	}
	if match[2] == "m" {
		seconds *= 60
	}
	return seconds, true
}

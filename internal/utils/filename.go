package utils

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	// Characters invalid in filenames on most filesystems
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	// Runs of whitespace become a single underscore
	whitespaceRuns = regexp.MustCompile(`\s+`)
	// Export file names are split on underscores, so collapse repeats
	multipleUnderscores = regexp.MustCompile(`_{2,}`)
)

const maxPrefixLength = 100

// SanitizeFilename makes name safe to use as the prefix of an export file
// name. Invalid characters are dropped, whitespace becomes underscores and the
// result is trimmed to a sane length. fallback is returned when nothing usable
// is left.
func SanitizeFilename(name, fallback string) string {
	name = whitespaceRuns.ReplaceAllString(strings.TrimSpace(name), "_")
	name = invalidFilenameChars.ReplaceAllString(name, "")
	name = multipleUnderscores.ReplaceAllString(name, "_")

	// Leading dots would hide the files on unix
	name = strings.TrimLeft(name, ".")
	name = strings.Trim(name, "_")

	if len(name) > maxPrefixLength {
		cut := maxPrefixLength
		for cut > 0 && !utf8.RuneStart(name[cut]) {
			cut--
		}
		name = strings.Trim(name[:cut], "_")
	}

	if name == "" {
		return fallback
	}
	return name
}

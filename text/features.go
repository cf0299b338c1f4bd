package text

import (
	"strconv"
	"strings"

	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/shaping"
)

// ParseFeatures parses a CSS font-feature-settings string into shaping
// features. The accepted grammar per entry is:
//
//	"liga"        enable the feature
//	"liga" on     enable the feature
//	"liga" off    disable the feature
//	"salt" 2      select alternate 2
//
// Entries are comma-separated; quotes around the tag are optional.
// Malformed entries are skipped, never an error: a bad feature string must
// not stop text from rendering.
func ParseFeatures(s string) []shaping.FontFeature {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	var features []shaping.FontFeature
	for _, entry := range strings.Split(s, ",") {
		if f, ok := parseFeature(entry); ok {
			features = append(features, f)
		}
	}
	return features
}

func parseFeature(entry string) (shaping.FontFeature, bool) {
	fields := strings.Fields(entry)
	if len(fields) == 0 || len(fields) > 2 {
		return shaping.FontFeature{}, false
	}

	tag := strings.Trim(fields[0], `"'`)
	if len(tag) != 4 || !isASCIIPrintable(tag) {
		return shaping.FontFeature{}, false
	}

	value := uint32(1)
	if len(fields) == 2 {
		switch fields[1] {
		case "on":
			value = 1
		case "off":
			value = 0
		default:
			n, err := strconv.ParseUint(fields[1], 10, 32)
			if err != nil {
				return shaping.FontFeature{}, false
			}
			value = uint32(n)
		}
	}

	return shaping.FontFeature{Tag: ot.MustNewTag(tag), Value: value}, true
}

func isASCIIPrintable(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

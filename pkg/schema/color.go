package schema

import (
	"regexp"
	"strings"

	"golang.org/x/image/colornames"
)

// colorArg is one numeric color function argument with an optional percent
// sign.
const colorArg = `[+-]?(?:\d+(?:\.\d*)?|\.\d+)%?`

var (
	hexColorPattern      = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	functionColorPattern = regexp.MustCompile(`^(?i:rgba?|hsla?)\(\s*` + colorArg + `(?:\s*,\s*` + colorArg + `|\s+` + colorArg + `){2,3}\s*\)$`)
)

// IsColor reports whether value is a color plotly accepts: a hex triplet or
// quadruplet, an rgb/rgba/hsl/hsla function, "transparent", or an SVG color
// name.
func IsColor(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false
	}
	if hexColorPattern.MatchString(trimmed) || functionColorPattern.MatchString(trimmed) {
		return true
	}
	name := strings.ToLower(trimmed)
	if name == "transparent" {
		return true
	}
	_, ok := colornames.Map[name]
	return ok
}

func normalizeColor(value string) string {
	trimmed := strings.TrimSpace(value)
	lower := strings.ToLower(trimmed)
	if _, ok := colornames.Map[lower]; ok || lower == "transparent" {
		return lower
	}
	return trimmed
}

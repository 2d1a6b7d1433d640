// Package style maps the semantic roles of a report onto terminal styles.
//
// Styles are addressed by dotted paths such as "red.bold" or
// "bgBlue.whiteBright", using the same names as the chalk family of
// terminal styling libraries. Each segment resolves to one
// github.com/fatih/color attribute.
package style

import (
	"strings"

	"github.com/fatih/color"
)

// Role is a semantic category of report text, independent of the text itself.
type Role string

const (
	RoleFile      Role = "file"
	RoleLocation  Role = "location"
	RoleError     Role = "error"
	RoleWarning   Role = "warning"
	RoleMessage   Role = "message"
	RoleRule      Role = "rule"
	RoleSeparator Role = "separator"
	RoleSource    Role = "source"
	RoleCaret     Role = "caret"
)

var roles = []Role{
	RoleFile,
	RoleLocation,
	RoleError,
	RoleWarning,
	RoleMessage,
	RoleRule,
	RoleSeparator,
	RoleSource,
	RoleCaret,
}

// Roles returns every recognized role in a fixed order.
func Roles() []Role {
	out := make([]Role, len(roles))
	copy(out, roles)
	return out
}

// IsRole reports whether name is a recognized role.
func IsRole(name string) bool {
	for _, r := range roles {
		if string(r) == name {
			return true
		}
	}
	return false
}

// Style is an ordered set of terminal attributes. The empty Style renders
// text unchanged.
type Style []color.Attribute

// IsZero returns true if the style applies no attributes.
func (s Style) IsZero() bool {
	return len(s) == 0
}

var namespace = map[string]color.Attribute{
	// modifiers
	"reset":         color.Reset,
	"bold":          color.Bold,
	"dim":           color.Faint,
	"italic":        color.Italic,
	"underline":     color.Underline,
	"blink":         color.BlinkSlow,
	"inverse":       color.ReverseVideo,
	"hidden":        color.Concealed,
	"strikethrough": color.CrossedOut,

	// foreground
	"black":   color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
	"gray":    color.FgHiBlack,
	"grey":    color.FgHiBlack,

	"blackBright":   color.FgHiBlack,
	"redBright":     color.FgHiRed,
	"greenBright":   color.FgHiGreen,
	"yellowBright":  color.FgHiYellow,
	"blueBright":    color.FgHiBlue,
	"magentaBright": color.FgHiMagenta,
	"cyanBright":    color.FgHiCyan,
	"whiteBright":   color.FgHiWhite,

	// background
	"bgBlack":   color.BgBlack,
	"bgRed":     color.BgRed,
	"bgGreen":   color.BgGreen,
	"bgYellow":  color.BgYellow,
	"bgBlue":    color.BgBlue,
	"bgMagenta": color.BgMagenta,
	"bgCyan":    color.BgCyan,
	"bgWhite":   color.BgWhite,
	"bgGray":    color.BgHiBlack,
	"bgGrey":    color.BgHiBlack,

	"bgBlackBright":   color.BgHiBlack,
	"bgRedBright":     color.BgHiRed,
	"bgGreenBright":   color.BgHiGreen,
	"bgYellowBright":  color.BgHiYellow,
	"bgBlueBright":    color.BgHiBlue,
	"bgMagentaBright": color.BgHiMagenta,
	"bgCyanBright":    color.BgHiCyan,
	"bgWhiteBright":   color.BgHiWhite,
}

// Parse resolves a dotted style path such as "red.bold". The second result
// is false if any segment does not name a known style, in which case the
// whole path is rejected. Names are case-sensitive.
func Parse(path string) (Style, bool) {
	segments := strings.Split(path, ".")
	s := make(Style, 0, len(segments))
	for _, seg := range segments {
		attr, ok := namespace[seg]
		if !ok {
			return nil, false
		}
		s = append(s, attr)
	}
	return s, true
}

// MustParse is like Parse but panics on an unknown segment. It is meant for
// built-in palettes.
func MustParse(path string) Style {
	s, ok := Parse(path)
	if !ok {
		panic("style: unknown style path " + path)
	}
	return s
}

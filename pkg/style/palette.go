package style

// Palette maps every role to a style. A role mapped to the empty Style
// renders plain.
type Palette map[Role]Style

// DefaultPalette returns the palette of the standalone formatter.
func DefaultPalette() Palette {
	return Palette{
		RoleFile:      MustParse("cyan.bold"),
		RoleLocation:  MustParse("bold"),
		RoleError:     MustParse("red.bold"),
		RoleWarning:   MustParse("yellow.bold"),
		RoleMessage:   MustParse("bold"),
		RoleRule:      MustParse("bold.dim"),
		RoleSeparator: MustParse("dim"),
		RoleSource:    nil,
		RoleCaret:     MustParse("green.bold"),
	}
}

// PluginPalette returns the palette used when running as an engine plugin:
// locations and messages are gray, and the rule suffix shares the message
// style.
func PluginPalette() Palette {
	return Palette{
		RoleFile:      MustParse("cyan.bold"),
		RoleLocation:  MustParse("gray.bold"),
		RoleError:     MustParse("red.bold"),
		RoleWarning:   MustParse("yellow.bold"),
		RoleMessage:   MustParse("gray.bold"),
		RoleRule:      MustParse("gray.bold"),
		RoleSeparator: MustParse("dim"),
		RoleSource:    nil,
		RoleCaret:     MustParse("green.bold"),
	}
}

// WithOverrides returns a copy of p where each role named in overrides uses
// the parsed style path instead. Overrides whose path does not resolve keep
// the role's current style, and keys that are not roles are ignored. The
// names of rejected overrides are returned so callers can report them.
func (p Palette) WithOverrides(overrides map[string]string) (Palette, []string) {
	out := make(Palette, len(roles))
	var rejected []string

	for _, role := range roles {
		out[role] = p[role]

		path, ok := overrides[string(role)]
		if !ok {
			continue
		}
		s, ok := Parse(path)
		if !ok {
			rejected = append(rejected, string(role))
			continue
		}
		out[role] = s
	}

	return out, rejected
}

// Get returns the style for a role, or the empty Style if none is set.
func (p Palette) Get(role Role) Style {
	return p[role]
}

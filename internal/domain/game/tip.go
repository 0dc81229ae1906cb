package game

// TipKind distinguishes the two shapes a tip can take.
type TipKind int

const (
	// TipPlain is a single line of advice.
	TipPlain TipKind = iota
	// TipRole groups several lines under a role label (host, player, audience).
	TipRole
)

// Tip is either a plain line or a role with its own lines.
type Tip struct {
	kind  TipKind
	text  string
	role  string
	lines []string
}

// NewPlainTip creates a plain tip.
func NewPlainTip(text string) Tip {
	return Tip{kind: TipPlain, text: text}
}

// NewRoleTip creates a tip addressed to a role.
func NewRoleTip(role string, lines []string) Tip {
	return Tip{kind: TipRole, role: role, lines: cloneStrings(lines)}
}

// Kind returns the tip shape.
func (t Tip) Kind() TipKind { return t.kind }

// Text returns the plain tip text (empty for role tips).
func (t Tip) Text() string { return t.text }

// Role returns the role label (empty for plain tips).
func (t Tip) Role() string { return t.role }

// Lines returns the role tip lines (nil for plain tips).
func (t Tip) Lines() []string { return t.lines }

// SearchableText returns the strings free-text search looks at.
// The role label is display-only and never included.
func (t Tip) SearchableText() []string {
	if t.kind == TipRole {
		return t.lines
	}
	return []string{t.text}
}

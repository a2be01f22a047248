package params

import "strings"

// Field is one entry of a Group: either a parameter or a nested group.
type Field interface {
	Name() string
	EscapedName() string
}

// ValueField is a Field carrying a single serializable value.
type ValueField interface {
	Field
	ValueString() string
	SetValueString(string) error
}

// Group is an ordered, named aggregate of fields. It is purely an
// aggregation unit for serialization: it owns no values of its own.
type Group struct {
	name   string
	fields []Field
}

// NewGroup returns a group with the given name and no fields.
func NewGroup(name string) *Group {
	return &Group{name: name}
}

func (g *Group) Name() string { return g.name }

func (g *Group) SetName(name string) { g.name = name }

// EscapedName returns the group's name in XML-element-safe form.
func (g *Group) EscapedName() string { return escapeName(g.name) }

// Add appends f to the group.
func (g *Group) Add(f Field) {
	g.fields = append(g.fields, f)
}

// RemoveAt removes the field at index i. It panics if i is out of range.
func (g *Group) RemoveAt(i int) {
	g.fields = append(g.fields[:i], g.fields[i+1:]...)
}

// Len returns the number of fields in the group.
func (g *Group) Len() int { return len(g.fields) }

// FieldAt returns the field at index i. It panics if i is out of range.
func (g *Group) FieldAt(i int) Field { return g.fields[i] }

// Fields returns a snapshot copy of the group's fields in order.
func (g *Group) Fields() []Field {
	out := make([]Field, len(g.fields))
	copy(out, g.fields)
	return out
}

// escapeName maps a display name to a valid XML element name: every byte
// outside [A-Za-z0-9_:.-] becomes an underscore, and a leading character an
// element name may not start with gets one prepended.
func escapeName(name string) string {
	if name == "" {
		return "_"
	}
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '_' || r == ':' || r == '.' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := b.String()
	if c := out[0]; (c >= '0' && c <= '9') || c == '.' || c == '-' {
		out = "_" + out
	}
	return out
}

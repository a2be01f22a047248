package params

import (
	"fmt"
	"log/slog"

	"github.com/beevik/etree"
)

// Serialize writes g and every nested field into a fresh XML document: one
// element per group, one child element per field, all under escaped names,
// with each value in its canonical text form.
func Serialize(g *Group) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	serializeGroup(&doc.Element, g)
	return doc
}

// SerializeInto writes g under parent. An existing element with the group's
// name is replaced, so serializing over a previously loaded document does
// not duplicate entries.
func SerializeInto(parent *etree.Element, g *Group) {
	if old := parent.SelectElement(g.EscapedName()); old != nil {
		parent.RemoveChild(old)
	}
	serializeGroup(parent, g)
}

func serializeGroup(parent *etree.Element, g *Group) {
	el := parent.CreateElement(g.EscapedName())
	for _, f := range g.Fields() {
		switch f := f.(type) {
		case *Group:
			serializeGroup(el, f)
		case ValueField:
			el.CreateElement(f.EscapedName()).SetText(f.ValueString())
		default:
			slog.Warn("params: serialize skipping unknown field kind", "name", f.Name())
		}
	}
}

// Deserialize fills g's fields from doc by name matching. The group's
// element is searched for anywhere in the document; each field is then
// matched against the element's direct children by escaped name. Missing
// entries and unparseable values are logged and skipped, since persisted
// files may be hand-edited or partially written. Returns ErrGroupNotFound
// only when the group's own element is absent.
//
// Fields must exist before they can be matched: a dynamically sized
// collection needs Collection.PreDeserialize first.
func Deserialize(doc *etree.Document, g *Group) error {
	el := doc.FindElement("//" + g.EscapedName())
	if el == nil {
		return fmt.Errorf("%w: %s", ErrGroupNotFound, g.EscapedName())
	}
	deserializeGroup(el, g)
	return nil
}

func deserializeGroup(el *etree.Element, g *Group) {
	for _, f := range g.Fields() {
		child := el.SelectElement(f.EscapedName())
		if child == nil {
			slog.Info("params: deserialize found no element for field", "group", g.Name(), "field", f.Name())
			continue
		}
		switch f := f.(type) {
		case *Group:
			deserializeGroup(child, f)
		case ValueField:
			if err := f.SetValueString(child.Text()); err != nil {
				slog.Error("params: deserialize skipping unparseable value", "field", f.Name(), "text", child.Text(), "err", err)
			}
		}
	}
}

// Save serializes g and writes the document to an XML file at path.
func Save(path string, g *Group) error {
	doc := Serialize(g)
	doc.Indent(2)
	return doc.WriteToFile(path)
}

// Load reads an XML document from path.
func Load(path string) (*etree.Document, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, err
	}
	return doc, nil
}

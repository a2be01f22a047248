package params

import "github.com/beevik/etree"

// PreDeserialize must run before Deserialize when restoring a collection
// from a previously written document. Generic deserialization matches
// document nodes to fields by name, and a freshly started process has no
// way of knowing how many entries the collection held when it was saved.
// PreDeserialize searches doc for the mirrored group's element, counts its
// non-empty children and inserts that many sequentially named, zero-valued
// placeholder parameters, silently (no events fire). Deserialize then fills
// them in by name match.
//
// If clear is true the collection is emptied first, without notifying.
//
// The return value reports whether the group's element was found. A false
// return means the document holds no prior data for this collection and the
// store was left empty (or untouched, when clear is false); a first-ever
// run lands here and it is not an error.
func (c *Collection[T]) PreDeserialize(doc *etree.Document, clear bool) bool {
	c.mustBeSetup()
	if clear {
		c.Clear(false)
	}
	path := "//" + c.group.EscapedName()
	el := doc.FindElement(path)
	if el == nil {
		c.logger.Info("params: PreDeserialize found no group element", "path", path)
		return false
	}
	for _, child := range el.ChildElements() {
		if len(child.Text()) == 0 {
			// Tolerate hand-edited or partially written files.
			c.logger.Error("params: PreDeserialize ignoring empty entry", "group", c.group.Name(), "entry", child.Tag)
			continue
		}
		c.addEntry(false)
	}
	return true
}

// addEntry appends one zero-valued placeholder parameter. Used to shape the
// mirrored group ahead of deserialization.
func (c *Collection[T]) addEntry(notify bool) {
	var zero T
	c.AddItem(zero, notify)
}

// addEntries appends count zero-valued placeholder parameters.
func (c *Collection[T]) addEntries(count int, notify bool) {
	for i := 0; i < count; i++ {
		c.addEntry(notify)
	}
}

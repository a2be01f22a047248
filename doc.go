// Package params implements a dynamically sized collection of observable,
// serializable parameters of a single type.
//
// A Collection is useful when you want named, observable values but you
// don't know ahead of time how many of them you will have. It behaves like
// a slice of parameters while presenting itself to the serializer as a
// named group of fields: every parameter is assigned a sequential name
// (prefix + index) and mirrored into a Group that Serialize and Deserialize
// can walk by name.
//
// Restoring a collection is a two-step protocol. Generic deserialization
// matches document nodes to fields by name, so the fields must exist before
// it runs. PreDeserialize inspects a previously written document, counts the
// persisted entries and materializes that many zero-valued placeholders;
// Deserialize then fills them in:
//
//	doc, _ := params.Load("settings.xml")
//	collection.PreDeserialize(doc, true)
//	params.Deserialize(doc, settings)
//
// The package is not safe for concurrent use. All access to a Collection
// must come from a single goroutine, and event listeners must not mutate
// the collection they are listening to.
package params

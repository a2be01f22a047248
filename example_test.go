package params_test

import (
	"fmt"

	params "github.com/c-mendoza/paramcollection"
)

// A collection holds an unknown-ahead-of-time number of parameters and
// persists them through the two-step restore protocol: PreDeserialize shapes
// the collection, Deserialize fills it.
func Example() {
	settings := params.NewGroup("Settings")

	positions := &params.Collection[float64]{}
	positions.Setup("Position ", "Circle Positions", settings)
	positions.AddItem(12.5, true)
	positions.AddItem(80, true)
	positions.AddItem(200.25, true)

	doc := params.Serialize(settings)

	// A fresh process knows nothing about the previous count.
	restoredSettings := params.NewGroup("Settings")
	restored := &params.Collection[float64]{}
	restored.Setup("Position ", "Circle Positions", restoredSettings)

	restored.PreDeserialize(doc, true)
	if err := params.Deserialize(doc, restoredSettings); err != nil {
		fmt.Println("restore failed:", err)
		return
	}

	for i, p := range restored.All() {
		fmt.Printf("%d: %s = %v\n", i, p.Name(), p.Get())
	}
	// Output:
	// 0: Position 0 = 12.5
	// 1: Position 1 = 80
	// 2: Position 2 = 200.25
}

// Package blocktemplates holds the predefined block compositions operators
// can use to seed a new service's content. The catalog is process-wide
// immutable configuration: nothing here touches the database, and selecting
// a template only populates the editor's draft block list.
package blocktemplates

import (
	"encoding/json"

	"amma-cms/internal/domain/services"
)

type Template struct {
	Key         string                `json:"key"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Blocks      []services.BlockDraft `json:"blocks"`
}

// Summary is the listing shape: key, name and description without block bodies.
type Summary struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// List returns all templates in catalog declaration order.
func List() []Summary {
	out := make([]Summary, 0, len(catalog))
	for _, t := range catalog {
		out = append(out, Summary{Key: t.Key, Name: t.Name, Description: t.Description})
	}
	return out
}

// Get looks up a template by key. Purely a lookup; never mutates the catalog.
func Get(key string) (Template, bool) {
	for _, t := range catalog {
		if t.Key == key {
			return t, true
		}
	}
	return Template{}, false
}

func data(raw string) json.RawMessage {
	return json.RawMessage(raw)
}

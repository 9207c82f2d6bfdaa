package tag

import "github.com/google/uuid"

// Tag is immutable reference data attached to recipes.
// name, slug and color are each unique.
type Tag struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Slug  string    `json:"slug"`
	Color string    `json:"color"`
}

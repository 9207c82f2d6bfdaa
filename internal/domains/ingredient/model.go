package ingredient

import "github.com/google/uuid"

// Ingredient is immutable reference data. The (name, measurement_unit)
// pair is unique so "sugar (g)" and "sugar (tbsp)" can coexist.
type Ingredient struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	MeasurementUnit string    `json:"measurement_unit"`
}

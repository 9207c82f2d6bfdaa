package cart

// ShoppingListFilename is the attachment name of the downloaded list
const ShoppingListFilename = "foodgram_shopping_cart.txt"

// ShoppingListItem is one aggregated ingredient across every recipe in
// the cart. Amounts are summed per (name, measurement unit) pair.
type ShoppingListItem struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Total           int    `json:"total"`
}

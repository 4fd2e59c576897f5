package domain

// Product is a catalogue entry. Prices are kept in the smallest currency
// unit to avoid floating point arithmetic on money.
type Product struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category int    `json:"category"`
	Price    int    `json:"price"`
}

// UnknownProduct is the placeholder returned when a product ID cannot be
// resolved. Its price of zero means an unresolvable item contributes
// nothing to a checkout total.
func UnknownProduct() Product {
	return Product{ID: -1, Name: "unknown", Category: -1, Price: 0}
}

type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

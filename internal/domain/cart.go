package domain

// CartItem is one line of a cart snapshot.
type CartItem struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

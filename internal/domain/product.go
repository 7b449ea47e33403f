package domain

// Product carries the authoritative stock count and visibility flag. Stock is
// mutated only by finalization's conditional decrement.
type Product struct {
	ID            string
	Title         string
	Price         int64
	StockQuantity int
	IsVisible     bool
}

// CartItem is a row of the user's live cart. A reservation is a copy of cart
// contents, not a hold on them; finalization clears the owner's cart.
type CartItem struct {
	ID        string
	UserID    string
	ProductID string
	Quantity  int
}

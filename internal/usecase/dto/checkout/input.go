package checkoutdto

// CheckoutItemInput is one cart line of a checkout request.
type CheckoutItemInput struct {
	ProductID string
	Quantity  int
}

// CreateReservationInput carries the validated checkout submission. Amount
// fields are client-computed and re-verified against server-side prices.
type CreateReservationInput struct {
	UserID         string
	Items          []CheckoutItemInput
	ShippingFee    int64
	FinalAmount    int64
	DiscountCode   string
	RecipientName  string
	RecipientPhone string
	ContactEmail   string
	ShippingAddr   string
	InvoiceTitle   string
	InvoiceTaxID   string
}

package types

// CheckoutSessionRequest describes the single line item sent to the provider.
// UnitAmount is in minor currency units (2500 = 25.00).
type CheckoutSessionRequest struct {
	ProductName string `json:"product_name" validate:"required"`
	UnitAmount  int64  `json:"unit_amount" validate:"required,gt=0"`
	Currency    string `json:"currency" validate:"required,len=3,lowercase"`
	Quantity    int64  `json:"quantity" validate:"required,gt=0"`
	SuccessURL  string `json:"success_url" validate:"required,url"`
	CancelURL   string `json:"cancel_url" validate:"required,url"`
}

// CheckoutSession is what the provider hands back.
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type CheckoutSessionResponse struct {
	URL string `json:"url"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

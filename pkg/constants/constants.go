package constants

// Fixed product sold by the checkout endpoint.
const (
	ProductName     = "Producto de prueba"
	ProductAmount   = 2500
	ProductCurrency = "usd"
	ProductQuantity = 1
)

// Redirect targets handed to the provider.
const (
	SuccessURL = "http://localhost:3000/success"
	CancelURL  = "http://localhost:3000/cancel"
)

// Client-facing error messages.
const (
	MsgCheckoutFailed  = "No se pudo crear la sesión"
	MsgTooManyRequests = "too many requests"
)

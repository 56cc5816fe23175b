package checkout

import (
	"errors"
	"net"
	"net/http"
	"net/url"

	"github.com/stripe/stripe-go/v82"
)

// ErrorKind labels a provider failure for logs and metrics. It never
// reaches the HTTP caller.
type ErrorKind string

const (
	KindNetwork    ErrorKind = "network"
	KindAuth       ErrorKind = "auth"
	KindValidation ErrorKind = "validation"
	KindUnknown    ErrorKind = "unknown"
)

// Classify inspects a provider error.
func Classify(err error) ErrorKind {
	if err == nil {
		return ""
	}

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		switch {
		case stripeErr.HTTPStatusCode == http.StatusUnauthorized,
			stripeErr.HTTPStatusCode == http.StatusForbidden:
			return KindAuth
		case stripeErr.Type == stripe.ErrorTypeInvalidRequest,
			stripeErr.Type == stripe.ErrorTypeCard,
			stripeErr.Type == stripe.ErrorTypeIdempotency:
			return KindValidation
		default:
			return KindUnknown
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return KindNetwork
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return KindNetwork
	}

	return KindUnknown
}

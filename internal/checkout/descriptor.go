package checkout

import (
	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/pkg/constants"
	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/pkg/types"
)

// NewDescriptor returns a fresh copy of the only product this service sells.
// Nothing from the incoming request is used.
func NewDescriptor() *types.CheckoutSessionRequest {
	return &types.CheckoutSessionRequest{
		ProductName: constants.ProductName,
		UnitAmount:  constants.ProductAmount,
		Currency:    constants.ProductCurrency,
		Quantity:    constants.ProductQuantity,
		SuccessURL:  constants.SuccessURL,
		CancelURL:   constants.CancelURL,
	}
}

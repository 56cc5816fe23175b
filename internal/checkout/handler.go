package checkout

import (
	"context"
	"net/http"

	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/internal/middleware"
	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/pkg/constants"
	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/pkg/httpx"
	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/pkg/types"
)

type CheckoutHandler struct {
	checkoutService *CheckoutService
}

func NewCheckoutHandler(checkoutService *CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutService: checkoutService,
	}
}

// CreateCheckoutSession ignores the request body. The provider call is
// detached from the request so a client hanging up does not abort it.
func (ch *CheckoutHandler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := middleware.GetLogger(ctx)

	sess, err := ch.checkoutService.CreateSession(context.WithoutCancel(ctx))
	if err != nil {
		logger.Error().
			Stack().
			Err(err).
			Str("error_kind", string(Classify(err))).
			Msg("Failed to create checkout session")
		httpx.WriteError(w, http.StatusInternalServerError, constants.MsgCheckoutFailed)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, types.CheckoutSessionResponse{URL: sess.URL})
}

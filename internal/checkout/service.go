package checkout

import (
	"context"
	"time"

	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/internal/psp"
	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/pkg/types"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = validator.New()

type CheckoutService struct {
	provider psp.Client
}

func NewCheckoutService(provider psp.Client) *CheckoutService {
	return &CheckoutService{
		provider: provider,
	}
}

// CreateSession asks the provider for a hosted checkout session for the
// fixed product. It makes exactly one provider call and never retries.
func (cs *CheckoutService) CreateSession(ctx context.Context) (*types.CheckoutSession, error) {
	req := NewDescriptor()
	if err := validate.Struct(req); err != nil {
		return nil, errors.Wrap(err, "invalid checkout descriptor")
	}

	start := time.Now()
	sess, err := cs.provider.CreateCheckoutSession(ctx, req)
	providerDuration.UpdateDuration(start)
	if err != nil {
		failedCounter(Classify(err)).Inc()
		return nil, errors.Wrap(err, "failed to create checkout session")
	}

	sessionsCreatedCounter.Inc()
	return sess, nil
}

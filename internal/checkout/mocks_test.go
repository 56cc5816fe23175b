package checkout

import (
	"context"
	"sync"

	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/pkg/types"
)

// ProviderMock records every descriptor it receives.
type ProviderMock struct {
	mu       sync.Mutex
	requests []types.CheckoutSessionRequest
	ctxErrs  []error

	// respond decides the outcome of the n-th call (0-based).
	respond func(n int) (*types.CheckoutSession, error)
}

func (p *ProviderMock) CreateCheckoutSession(ctx context.Context, req *types.CheckoutSessionRequest) (*types.CheckoutSession, error) {
	p.mu.Lock()
	n := len(p.requests)
	p.requests = append(p.requests, *req)
	p.ctxErrs = append(p.ctxErrs, ctx.Err())
	p.mu.Unlock()

	return p.respond(n)
}

func (p *ProviderMock) Requests() []types.CheckoutSessionRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]types.CheckoutSessionRequest(nil), p.requests...)
}

func succeedWith(url string) func(int) (*types.CheckoutSession, error) {
	return func(int) (*types.CheckoutSession, error) {
		return &types.CheckoutSession{ID: "cs_test", URL: url}, nil
	}
}

func failWith(err error) func(int) (*types.CheckoutSession, error) {
	return func(int) (*types.CheckoutSession, error) {
		return nil, err
	}
}

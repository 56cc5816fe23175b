package psp

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/DiegoHidalgo-a/Brayan-Espinoza-Araya-sub001/pkg/types"
	"github.com/rs/zerolog"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// Client creates hosted checkout sessions with a payment provider.
type Client interface {
	CreateCheckoutSession(ctx context.Context, req *types.CheckoutSessionRequest) (*types.CheckoutSession, error)
}

type StripeClient struct {
	api    *client.API
	logger *zerolog.Logger
}

type StripeOptions struct {
	// BaseURL overrides the Stripe API host, e.g. a local mock.
	BaseURL string
	// HTTPClient replaces the default provider HTTP client.
	HTTPClient *http.Client
	Timeout    time.Duration
}

// NewStripeClient builds the provider client once. The secret key is not
// checked; Stripe rejects the first call if it is empty or wrong.
func NewStripeClient(secretKey string, logger *zerolog.Logger, opts StripeOptions) *StripeClient {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 80 * time.Second
		}
		httpClient = &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 50,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}

	backendConfig := &stripe.BackendConfig{
		HTTPClient:        httpClient,
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &leveledLogger{log: logger},
	}
	if opts.BaseURL != "" {
		backendConfig.URL = stripe.String(opts.BaseURL)
	}

	backend := stripe.GetBackendWithConfig(stripe.APIBackend, backendConfig)

	api := &client.API{}
	api.Init(secretKey, &stripe.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})

	return &StripeClient{
		api:    api,
		logger: logger,
	}
}

func (c *StripeClient) CreateCheckoutSession(ctx context.Context, req *types.CheckoutSessionRequest) (*types.CheckoutSession, error) {
	params := sessionParams(req)
	params.Context = ctx

	start := time.Now()
	sess, err := c.api.CheckoutSessions.New(params)
	duration := time.Since(start).Milliseconds()
	if err != nil {
		return nil, fmt.Errorf("stripe checkout session: %w", err)
	}

	c.logger.Debug().
		Str("session_id", sess.ID).
		Int64("duration_ms", duration).
		Msg("Stripe checkout session created")

	return &types.CheckoutSession{
		ID:  sess.ID,
		URL: sess.URL,
	}, nil
}

func sessionParams(req *types.CheckoutSessionRequest) *stripe.CheckoutSessionParams {
	return &stripe.CheckoutSessionParams{
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(req.Currency),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ProductName),
					},
					UnitAmount: stripe.Int64(req.UnitAmount),
				},
				Quantity: stripe.Int64(req.Quantity),
			},
		},
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
	}
}

// leveledLogger routes stripe-go's internal logging through zerolog.
type leveledLogger struct {
	log *zerolog.Logger
}

func (l *leveledLogger) Debugf(format string, v ...interface{}) {
	l.log.Debug().Str("component", "stripe").Msgf(format, v...)
}

func (l *leveledLogger) Infof(format string, v ...interface{}) {
	l.log.Debug().Str("component", "stripe").Msgf(format, v...)
}

func (l *leveledLogger) Warnf(format string, v ...interface{}) {
	l.log.Warn().Str("component", "stripe").Msgf(format, v...)
}

// Errorf stays at debug: callers log provider failures themselves.
func (l *leveledLogger) Errorf(format string, v ...interface{}) {
	l.log.Debug().Str("component", "stripe").Msgf(format, v...)
}

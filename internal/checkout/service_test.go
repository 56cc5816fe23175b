package checkout

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
)

func TestNewDescriptor_Fixed(t *testing.T) {
	a := NewDescriptor()
	b := NewDescriptor()

	assert.Equal(t, a, b)
	assert.NotSame(t, a, b)
	assert.Equal(t, int64(2500), a.UnitAmount)
	assert.Equal(t, "usd", a.Currency)
	assert.Equal(t, int64(1), a.Quantity)
	assert.NoError(t, validate.Struct(a))
}

func TestCreateSession_Success(t *testing.T) {
	provider := &ProviderMock{respond: succeedWith("https://checkout.stripe.com/c/pay/cs_test")}
	svc := NewCheckoutService(provider)

	before := sessionsCreatedCounter.Get()

	sess, err := svc.CreateSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test", sess.URL)

	require.Len(t, provider.Requests(), 1)
	assert.Equal(t, *NewDescriptor(), provider.Requests()[0])
	assert.Equal(t, before+1, sessionsCreatedCounter.Get())
}

func TestCreateSession_ProviderError(t *testing.T) {
	providerErr := &stripe.Error{HTTPStatusCode: http.StatusUnauthorized, Type: stripe.ErrorTypeInvalidRequest, Msg: "Invalid API Key"}
	provider := &ProviderMock{respond: failWith(providerErr)}
	svc := NewCheckoutService(provider)

	before := failedCounter(KindAuth).Get()

	sess, err := svc.CreateSession(context.Background())
	require.Error(t, err)
	assert.Nil(t, sess)

	var stripeErr *stripe.Error
	assert.True(t, errors.As(err, &stripeErr))
	assert.Len(t, provider.Requests(), 1, "no retries")
	assert.Equal(t, before+1, failedCounter(KindAuth).Get())
}

func TestCreateSession_EachCallIsIndependent(t *testing.T) {
	provider := &ProviderMock{respond: succeedWith("https://checkout.stripe.com/c/pay/cs_test")}
	svc := NewCheckoutService(provider)

	for i := 0; i < 3; i++ {
		_, err := svc.CreateSession(context.Background())
		require.NoError(t, err)
	}

	reqs := provider.Requests()
	require.Len(t, reqs, 3)
	for _, r := range reqs {
		assert.Equal(t, reqs[0], r)
	}
}

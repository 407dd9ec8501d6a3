package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ben62534/Shadowstrengthwebsite/internal/domain"
)

func TestCheckoutStepNext(t *testing.T) {
	next, ok := domain.StepDelivery.Next()
	assert.True(t, ok)
	assert.Equal(t, domain.StepPayment, next)

	next, ok = domain.StepPayment.Next()
	assert.True(t, ok)
	assert.Equal(t, domain.StepComplete, next)

	next, ok = domain.StepComplete.Next()
	assert.False(t, ok)
	assert.Equal(t, domain.StepComplete, next)
}

func TestDeliveryInfoValidate(t *testing.T) {
	full := domain.DeliveryInfo{
		FullName: "Jordan Lee",
		Email:    "jordan@example.com",
		Address:  "1 Iron St",
		City:     "Austin",
		State:    "TX",
		ZipCode:  "73301",
		Phone:    "555-0100",
	}
	require.NoError(t, full.Validate())

	partial := full
	partial.Email = "  "
	partial.Phone = ""
	err := partial.Validate()
	require.ErrorIs(t, err, domain.ErrMissingField)
	assert.EqualError(t, err, "email: missing required field\nphone: missing required field")
}

func TestPaymentInfoValidate(t *testing.T) {
	require.NoError(t, domain.PaymentInfo{CardNumber: "4242", CardName: "J", ExpiryDate: "12/30", CVV: "123"}.Validate())
	require.ErrorIs(t, domain.PaymentInfo{}.Validate(), domain.ErrMissingField)
}

func TestClampQuantity(t *testing.T) {
	assert.Equal(t, 1, domain.ClampQuantity(0))
	assert.Equal(t, 5, domain.ClampQuantity(5))
	assert.Equal(t, 10, domain.ClampQuantity(11))
}

func TestParseSize(t *testing.T) {
	for _, size := range domain.Sizes {
		got, err := domain.ParseSize(string(size))
		require.NoError(t, err)
		assert.Equal(t, size, got)
	}

	_, err := domain.ParseSize("m")
	require.ErrorIs(t, err, domain.ErrInvalidSize)
}

func TestParseConsentDecision(t *testing.T) {
	d, err := domain.ParseConsentDecision("accepted")
	require.NoError(t, err)
	assert.Equal(t, domain.ConsentAccepted, d)

	_, err = domain.ParseConsentDecision("yes")
	require.ErrorIs(t, err, domain.ErrInvalidDecision)
}

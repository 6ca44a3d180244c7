package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateCheckout_UnknownPriceID(t *testing.T) {
	sg := &fakeStripeGateway{}
	svc := newTestService(sg, &fakeProfileGateway{})

	_, err := svc.CreateCheckout("price_enterprise", "", "")
	assert.ErrorIs(t, err, ErrInvalidPlan)
	// The provider must never be contacted for an unknown price id.
	assert.Equal(t, 0, sg.createCalls)
}

func TestCreateCheckout_ProPlanParams(t *testing.T) {
	sg := &fakeStripeGateway{}
	svc := newTestService(sg, &fakeProfileGateway{})

	resp, err := svc.CreateCheckout("price_pro", "user-42", "https://bearister.ai")
	assert.NoError(t, err)
	assert.Equal(t, "cs_test_123", resp.SessionID)

	assert.Equal(t, 1, sg.createCalls)
	assert.Equal(t, "price_pro", sg.lastParams.PlanID)
	assert.Equal(t, int64(9900), sg.lastParams.UnitAmount)
	assert.Equal(t, "PRO", sg.lastParams.TierCode)
	assert.Equal(t, "user-42", sg.lastParams.UserRef)
	assert.Equal(t, "https://bearister.ai/success?session_id={CHECKOUT_SESSION_ID}", sg.lastParams.SuccessURL)
	assert.Equal(t, "https://bearister.ai/pricing", sg.lastParams.CancelURL)
}

func TestCreateCheckout_FallsBackToSiteBaseURL(t *testing.T) {
	sg := &fakeStripeGateway{}
	svc := newTestService(sg, &fakeProfileGateway{})

	_, err := svc.CreateCheckout("price_core", "", "")
	assert.NoError(t, err)
	assert.Equal(t, "http://localhost:3000/success?session_id={CHECKOUT_SESSION_ID}", sg.lastParams.SuccessURL)
	assert.Equal(t, "http://localhost:3000/pricing", sg.lastParams.CancelURL)
}

func TestCreateCheckout_ProviderError(t *testing.T) {
	sg := &fakeStripeGateway{createErr: errors.New("stripe is down")}
	svc := newTestService(sg, &fakeProfileGateway{})

	_, err := svc.CreateCheckout("price_advanced", "", "")
	assert.ErrorIs(t, err, ErrGateway)
	assert.Contains(t, err.Error(), "stripe is down")
}

package payments

import (
	"context"
	"errors"
	"net/url"
	"testing"

	"comanda/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockGatewayRedirectsBackApproved(t *testing.T) {
	g, err := NewMercadoPagoGateway("", true)
	require.NoError(t, err)

	redirect, err := g.CreatePreference(context.Background(), interfaces.PreferenceRequest{
		Amount:            decimal.RequireFromString("12.50"),
		ExternalReference: "o1:g1",
		ReturnURL:         "https://comanda.test/v1/tables/t1/payments/return?guest_id=g1",
	})
	require.NoError(t, err)

	u, err := url.Parse(redirect)
	require.NoError(t, err)
	assert.Equal(t, "approved", u.Query().Get("status"))
	assert.Equal(t, "g1", u.Query().Get("guest_id"))
}

func TestGatewayWithoutAnyToken(t *testing.T) {
	g, err := NewMercadoPagoGateway("", false)
	require.NoError(t, err)

	_, err = g.CreatePreference(context.Background(), interfaces.PreferenceRequest{Amount: decimal.NewFromInt(10)})
	assert.True(t, errors.Is(err, ErrMissingMercadoPagoAccessToken))
}

func TestNilGateway(t *testing.T) {
	var g *MercadoPagoGateway
	_, err := g.CreatePreference(context.Background(), interfaces.PreferenceRequest{})
	assert.True(t, errors.Is(err, ErrMercadoPagoGatewayNotConfigured))
}

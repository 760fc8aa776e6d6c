package interfaces

import (
	"context"

	"github.com/shopspring/decimal"
)

// PreferenceRequest describes one guest's checkout at the provider.
//
// AccessToken overrides the gateway's default credentials when set
// (per-restaurant payment config).
type PreferenceRequest struct {
	Amount            decimal.Decimal
	Title             string
	ExternalReference string
	ReturnURL         string
	AccessToken       string
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// Completion is redirect based: the provider sends the guest back to
// ReturnURL with a status query parameter.
type IPaymentGateway interface {
	CreatePreference(ctx context.Context, req PreferenceRequest) (redirectURL string, err error)
}

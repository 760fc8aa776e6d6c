package payments

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"

	"comanda/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"
)

const currencyID = "ARS"

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway creates Checkout Pro preferences. The guest is sent to
// the returned init point and comes back to the return URL with a status.
type MercadoPagoGateway struct {
	defaultToken string
	mockMode     bool

	mu      sync.Mutex
	clients map[string]preference.Client
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

// NewMercadoPagoGateway builds the gateway. In mock mode no credentials are
// needed and every preference redirects straight back as approved.
func NewMercadoPagoGateway(accessToken string, mock bool) (*MercadoPagoGateway, error) {
	if mock {
		zap.L().Info("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}
	if accessToken == "" {
		// Restaurants may still bring their own token through payment_configs.
		zap.L().Warn("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
	}
	return &MercadoPagoGateway{defaultToken: accessToken, clients: map[string]preference.Client{}}, nil
}

func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, req interfaces.PreferenceRequest) (string, error) {
	if g != nil && g.mockMode {
		redirect := mockRedirect(req.ReturnURL)
		zap.L().Info("[payment][gateway] mock preference",
			zap.String("external_reference", req.ExternalReference),
			zap.String("amount", req.Amount.StringFixed(2)),
		)
		return redirect, nil
	}
	if g == nil {
		return "", ErrMercadoPagoGatewayNotConfigured
	}

	token := strings.TrimSpace(req.AccessToken)
	if token == "" {
		token = g.defaultToken
	}
	if token == "" {
		return "", ErrMissingMercadoPagoAccessToken
	}
	client, err := g.client(token)
	if err != nil {
		return "", err
	}

	unitPrice, _ := req.Amount.Round(2).Float64()
	request := preference.Request{
		Items: []preference.ItemRequest{{
			Title:      req.Title,
			Quantity:   1,
			UnitPrice:  unitPrice,
			CurrencyID: currencyID,
		}},
		ExternalReference: req.ExternalReference,
	}
	if req.ReturnURL != "" {
		request.BackURLs = &preference.BackURLsRequest{
			Success: req.ReturnURL,
			Pending: req.ReturnURL,
			Failure: req.ReturnURL,
		}
		request.AutoReturn = "approved"
	}

	zap.L().Info("[payment][gateway] create preference start",
		zap.String("external_reference", req.ExternalReference),
		zap.String("amount", req.Amount.StringFixed(2)),
	)
	resp, err := client.Create(ctx, request)
	if err != nil {
		zap.L().Error("[payment][gateway] sdk create failed", zap.Error(err))
		return "", err
	}
	zap.L().Info("[payment][gateway] create preference success", zap.String("preference_id", resp.ID))

	if resp.InitPoint != "" {
		return resp.InitPoint, nil
	}
	return resp.SandboxInitPoint, nil
}

func (g *MercadoPagoGateway) client(token string) (preference.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if c, ok := g.clients[token]; ok {
		return c, nil
	}
	cfg, err := config.New(token)
	if err != nil {
		zap.L().Error("[payment][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	c := preference.NewClient(cfg)
	g.clients[token] = c
	return c, nil
}

// mockRedirect sends the guest straight back with an approved status.
func mockRedirect(returnURL string) string {
	if returnURL == "" {
		return "https://www.mercadopago.com/checkout/mock"
	}
	u, err := url.Parse(returnURL)
	if err != nil {
		return returnURL
	}
	q := u.Query()
	q.Set("status", "approved")
	u.RawQuery = q.Encode()
	return u.String()
}

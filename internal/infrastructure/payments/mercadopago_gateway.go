package payments

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"grantflow/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway moves released grant funds through Mercado Pago.
// Mock mode (DISBURSEMENT_GATEWAY_MOCK) fakes an approved transfer for
// local and CI runs.

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IDisbursementGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isDisbursementGatewayMockEnabled() {
		log.Printf("[disbursement][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[disbursement][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[disbursement][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[disbursement][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) Disburse(ctx context.Context, fundRequestID string, amountCents int64, beneficiaryNgoID string) (string, string, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[disbursement][gateway] mock disburse fund_request_id=%s amount_cents=%d ngo_id=%s provider_id=%s", fundRequestID, amountCents, beneficiaryNgoID, id)
		return id, "approved", nil
	}

	if g == nil || g.client == nil {
		log.Printf("[disbursement][gateway] gateway not configured")
		return "", "", ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[disbursement][gateway] disburse start fund_request_id=%s amount_cents=%d", fundRequestID, amountCents)

	req := payment.Request{
		TransactionAmount: float64(amountCents) / 100,
		Description:       fmt.Sprintf("Grant disbursement for fund request %s", fundRequestID),
		ExternalReference: fundRequestID,
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[disbursement][gateway] sdk create failed fund_request_id=%s err=%v", fundRequestID, err)
		return "", "", err
	}
	log.Printf("[disbursement][gateway] disburse success fund_request_id=%s provider_id=%d provider_status=%s", fundRequestID, resp.ID, resp.Status)

	return fmt.Sprintf("%d", resp.ID), resp.Status, nil
}

func isDisbursementGatewayMockEnabled() bool {
	for _, key := range []string{"DISBURSEMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

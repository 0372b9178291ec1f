package payments

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/andressagonsalvespereira/0504MINE/internal/usecase/interfaces"
)

var ErrMissingAsaasAPIKey = errors.New("missing ASAAS_API_KEY")

const defaultAsaasBaseURL = "https://sandbox.asaas.com/api/v3"

// AsaasGateway talks to the Asaas REST API (v3). Asaas ships no Go SDK, so the
// client is a thin net/http wrapper; authentication is the access_token header.
type AsaasGateway struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

var _ interfaces.IPaymentGateway = (*AsaasGateway)(nil)

func NewAsaasGateway(apiKey string) (*AsaasGateway, error) {
	if apiKey == "" {
		log.Printf("[payment][gateway] missing ASAAS_API_KEY")
		return nil, ErrMissingAsaasAPIKey
	}

	baseURL := os.Getenv("ASAAS_API_URL")
	if baseURL == "" {
		baseURL = defaultAsaasBaseURL
	}
	log.Printf("[payment][gateway] Asaas client initialized base_url=%s", baseURL)

	return &AsaasGateway{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
	}, nil
}

func (g *AsaasGateway) CreateCustomer(ctx context.Context, req interfaces.GatewayCustomerRequest) (interfaces.GatewayCustomerResponse, error) {
	log.Printf("[payment][gateway] create customer start email=%s", req.Email)

	var resp interfaces.GatewayCustomerResponse
	if _, err := g.do(ctx, http.MethodPost, "/customers", req, &resp); err != nil {
		log.Printf("[payment][gateway] create customer failed err=%v", err)
		return interfaces.GatewayCustomerResponse{}, err
	}

	log.Printf("[payment][gateway] create customer success customer_id=%s", resp.ID)
	return resp, nil
}

func (g *AsaasGateway) CreateCharge(ctx context.Context, req interfaces.GatewayChargeRequest) (interfaces.GatewayChargeResponse, error) {
	log.Printf("[payment][gateway] create charge start customer=%s value=%.2f", req.Customer, req.Value)

	var resp interfaces.GatewayChargeResponse
	raw, err := g.do(ctx, http.MethodPost, "/payments", req, &resp)
	if err != nil {
		log.Printf("[payment][gateway] create charge failed err=%v", err)
		return interfaces.GatewayChargeResponse{}, err
	}
	resp.Raw = raw

	log.Printf("[payment][gateway] create charge success charge_id=%s provider_status=%s", resp.ID, resp.Status)
	return resp, nil
}

func (g *AsaasGateway) GetPixQRCode(ctx context.Context, chargeID string) (interfaces.GatewayPixQRCodeResponse, error) {
	log.Printf("[payment][gateway] get pix qrcode start charge_id=%s", chargeID)

	var resp interfaces.GatewayPixQRCodeResponse
	if _, err := g.do(ctx, http.MethodGet, "/payments/"+chargeID+"/pixQrCode", nil, &resp); err != nil {
		log.Printf("[payment][gateway] get pix qrcode failed charge_id=%s err=%v", chargeID, err)
		return interfaces.GatewayPixQRCodeResponse{}, err
	}

	log.Printf("[payment][gateway] get pix qrcode success charge_id=%s", chargeID)
	return resp, nil
}

func (g *AsaasGateway) CancelCharge(ctx context.Context, chargeID string) (json.RawMessage, error) {
	log.Printf("[payment][gateway] cancel charge start charge_id=%s", chargeID)

	raw, err := g.do(ctx, http.MethodDelete, "/payments/"+chargeID, nil, nil)
	if err != nil {
		log.Printf("[payment][gateway] cancel charge failed charge_id=%s err=%v", chargeID, err)
		return nil, err
	}

	log.Printf("[payment][gateway] cancel charge success charge_id=%s", chargeID)
	return raw, nil
}

// do issues one request and decodes a 2xx body into out (when non-nil). Non-2xx
// responses come back as *interfaces.GatewayError with the body untouched.
func (g *AsaasGateway) do(ctx context.Context, method, path string, body any, out any) (json.RawMessage, error) {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("access_token", g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &interfaces.GatewayError{StatusCode: resp.StatusCode, Body: raw}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, err
		}
	}
	return raw, nil
}

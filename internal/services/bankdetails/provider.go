package bankdetails

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"paisa/internal/config"
)

// Account is one result entry from the mobile-to-VPA lookup.
type Account struct {
	Name         string   `json:"name"`
	VPA          string   `json:"vpa"`
	MerchantIFSC string   `json:"merchant_ifsc"`
	TPAP         []string `json:"tpap"`
}

// Provider resolves a mobile number to the bank accounts behind it.
type Provider interface {
	LookupVPA(ctx context.Context, referenceID, mobile string) ([]Account, error)
}

type lookupRequest struct {
	ReferenceID string `json:"reference_id"`
	Consent     bool   `json:"consent"`
	Purpose     string `json:"purpose"`
	Mobile      string `json:"mobile"`
}

type lookupResponse struct {
	Data struct {
		Results []struct {
			Name         string   `json:"name"`
			VPA          string   `json:"vpa"`
			MerchantIFSC string   `json:"merchantIfsc"`
			TPAP         []string `json:"tpap"`
		} `json:"results"`
	} `json:"data"`
}

// HTTPProvider talks to the provider over HTTPS with header credentials.
// The client timeout is the whole budget for a lookup; there are no retries.
type HTTPProvider struct {
	cfg    config.ProviderConfig
	client *http.Client
}

func NewHTTPProvider(cfg config.ProviderConfig) *HTTPProvider {
	return &HTTPProvider{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

func (p *HTTPProvider) LookupVPA(ctx context.Context, referenceID, mobile string) ([]Account, error) {
	body, err := json.Marshal(lookupRequest{
		ReferenceID: referenceID,
		Consent:     true,
		Purpose:     p.cfg.Purpose,
		Mobile:      mobile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode lookup request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build lookup request: %w", err)
	}
	req.Header.Set("client_id", p.cfg.ClientID)
	req.Header.Set("client_secret", p.cfg.ClientSecret)
	req.Header.Set("module_secret", p.cfg.ModuleSecret)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	var decoded lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode provider response: %w", err)
	}

	accounts := make([]Account, 0, len(decoded.Data.Results))
	for _, r := range decoded.Data.Results {
		accounts = append(accounts, Account{
			Name:         r.Name,
			VPA:          r.VPA,
			MerchantIFSC: r.MerchantIFSC,
			TPAP:         r.TPAP,
		})
	}
	return accounts, nil
}

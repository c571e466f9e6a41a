package daraja

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"
)

const (
	sandboxBaseURL    = "https://sandbox.safaricom.co.ke"
	productionBaseURL = "https://api.safaricom.co.ke"
)

// Gateway is the STK push surface the payment service depends on.
type Gateway interface {
	STKPush(ctx context.Context, phone string, amount float64, accountRef, description string) (*STKPushResponse, error)
	QueryStatus(ctx context.Context, checkoutRequestID string) (*QueryResponse, error)
}

// Config carries the Daraja credentials and endpoints.
type Config struct {
	ConsumerKey    string
	ConsumerSecret string
	ShortCode      string
	Passkey        string
	CallbackURL    string
	Environment    string // "sandbox" or "production"
	// BaseURL overrides the environment-derived endpoint. Used in tests.
	BaseURL string
}

// Client talks to the Safaricom Daraja API.
type Client struct {
	cfg     Config
	baseURL string
	http    *http.Client
	now     func() time.Time
}

// NewClient constructs a Daraja client. The HTTP client carries a bounded
// timeout so a stalled gateway cannot hang request handlers.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = sandboxBaseURL
		if cfg.Environment == "production" {
			base = productionBaseURL
		}
	}
	return &Client{
		cfg:     cfg,
		baseURL: base,
		http:    &http.Client{Timeout: 30 * time.Second},
		now:     time.Now,
	}
}

// getAccessToken fetches an OAuth token using basic auth over the consumer
// key and secret.
func (c *Client) getAccessToken(ctx context.Context) (string, error) {
	url := c.baseURL + "/oauth/v1/generate?grant_type=client_credentials"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	req.SetBasicAuth(c.cfg.ConsumerKey, c.cfg.ConsumerSecret)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("token request returned %d: %s", resp.StatusCode, body)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("token response carried no access token")
	}
	return tok.AccessToken, nil
}

// password returns the base64 password and its timestamp for the given
// instant, per the Daraja scheme: base64(shortcode + passkey + timestamp).
func (c *Client) password(at time.Time) (password, timestamp string) {
	timestamp = at.Format("20060102150405")
	raw := c.cfg.ShortCode + c.cfg.Passkey + timestamp
	return base64.StdEncoding.EncodeToString([]byte(raw)), timestamp
}

// STKPush initiates a customer-paybill charge against phone. The phone must
// already be normalized; the amount is rounded to whole shillings.
func (c *Client) STKPush(ctx context.Context, phone string, amount float64, accountRef, description string) (*STKPushResponse, error) {
	password, timestamp := c.password(c.now())
	body := STKPushRequest{
		BusinessShortCode: c.cfg.ShortCode,
		Password:          password,
		Timestamp:         timestamp,
		TransactionType:   "CustomerPayBillOnline",
		Amount:            int(math.Round(amount)),
		PartyA:            phone,
		PartyB:            c.cfg.ShortCode,
		PhoneNumber:       phone,
		CallBackURL:       c.cfg.CallbackURL,
		AccountReference:  accountRef,
		TransactionDesc:   description,
	}

	var out STKPushResponse
	if err := c.post(ctx, "/mpesa/stkpush/v1/processrequest", body, &out); err != nil {
		return nil, err
	}
	if out.ErrorCode != "" {
		return nil, fmt.Errorf("stk push rejected (%s): %s", out.ErrorCode, out.ErrorMessage)
	}
	if out.ResponseCode != "0" {
		return nil, fmt.Errorf("stk push rejected: %s", out.ResponseDescription)
	}
	return &out, nil
}

// QueryStatus asks the gateway for the current state of an STK push.
func (c *Client) QueryStatus(ctx context.Context, checkoutRequestID string) (*QueryResponse, error) {
	password, timestamp := c.password(c.now())
	body := QueryRequest{
		BusinessShortCode: c.cfg.ShortCode,
		Password:          password,
		Timestamp:         timestamp,
		CheckoutRequestID: checkoutRequestID,
	}

	var out QueryResponse
	if err := c.post(ctx, "/mpesa/stkpushquery/v1/query", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	token, err := c.getAccessToken(ctx)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode gateway response (%d): %w", resp.StatusCode, err)
	}
	return nil
}

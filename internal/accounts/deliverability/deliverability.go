// Package deliverability decides whether an email address is worth sending
// transactional mail to. The primary signal comes from a remote mailbox
// verification service; a local typo heuristic supplies a did-you-mean
// suggestion when the remote one has nothing to offer.
package deliverability

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Result is the verdict on a single address.
type Result struct {
	SafeToSend bool
	// DidYouMean is a corrected address, or empty when no plausible
	// correction exists.
	DidYouMean string
}

// Verifier checks a single address before a signup is allowed to proceed.
// It is advisory: magic-link and reset flows skip it so a flaky upstream
// can never block an account recovery.
type Verifier interface {
	Verify(ctx context.Context, email string) (Result, error)
}

// Client talks to a mailbox verification HTTP API. The API is expected to
// answer GET {base}/v1/verify?email=... with a JSON body carrying a
// deliverability verdict and an optional correction.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Disabled returns a Verifier that never calls out. It still flags obvious
// provider typos locally so a missing upstream doesn't mean zero protection.
func Disabled() Verifier {
	return localVerifier{}
}

type localVerifier struct{}

func (localVerifier) Verify(_ context.Context, email string) (Result, error) {
	if suggestion := DidYouMean(email); suggestion != "" {
		return Result{SafeToSend: false, DidYouMean: suggestion}, nil
	}
	return Result{SafeToSend: true}, nil
}

type verifyResponse struct {
	Result     string `json:"result"`
	DidYouMean string `json:"did_you_mean"`
}

// Verify asks the remote service about the address. Any result other than
// "deliverable" or "risky" marks the address unsafe; "risky" is tolerated
// because over-blocking costs signups.
func (c *Client) Verify(ctx context.Context, email string) (Result, error) {
	endpoint := fmt.Sprintf("%s/v1/verify?email=%s", c.BaseURL, url.QueryEscape(email))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Result{}, err
	}
	if c.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.APIKey)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("deliverability: verify returned %s", resp.Status)
	}

	var body verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Result{}, fmt.Errorf("deliverability: decode response: %w", err)
	}

	res := Result{
		SafeToSend: body.Result == "deliverable" || body.Result == "risky",
		DidYouMean: body.DidYouMean,
	}
	if !res.SafeToSend && res.DidYouMean == "" {
		res.DidYouMean = DidYouMean(email)
	}
	return res, nil
}

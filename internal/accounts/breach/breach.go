// Package breach checks candidate passwords against a corpus of known
// leaked credentials using the k-anonymity range protocol: only the first
// five hex characters of the password's SHA-1 ever leave the process.
package breach

import (
	"bufio"
	"context"
	"crypto/sha1"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Checker reports how many times a password appears in known breaches.
type Checker interface {
	Count(ctx context.Context, password string) (int, error)
}

// DefaultBaseURL is the public Pwned Passwords range endpoint.
const DefaultBaseURL = "https://api.pwnedpasswords.com"

// Client queries a Pwned-Passwords-compatible range API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient builds a Client against the given base URL. An empty baseURL
// falls back to the public API.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Count returns the breach count for the password, or 0 when unseen.
func (c *Client) Count(ctx context.Context, password string) (int, error) {
	sum := sha1.Sum([]byte(password))
	digest := strings.ToUpper(fmt.Sprintf("%x", sum))
	prefix, suffix := digest[:5], digest[5:]

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/range/"+prefix, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Add-Padding", "true")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("breach: range lookup returned %s", resp.Status)
	}

	// Each line is "<35-hex-char suffix>:<count>". Padded responses include
	// suffixes with a count of 0, which read as unseen.
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		rest, ok := strings.CutPrefix(line, suffix+":")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil {
			return 0, fmt.Errorf("breach: malformed count %q: %w", rest, err)
		}
		return n, nil
	}
	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return 0, nil
}

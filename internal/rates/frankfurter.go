package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const DefaultBaseURL = "https://api.frankfurter.app"

// Client queries the Frankfurter exchange API. Free tier, no key needed.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{baseURL: baseURL, http: &http.Client{Timeout: timeout}}
}

type latestResponse struct {
	Rates map[string]float64 `json:"rates"`
}

// Latest converts amount from one currency to another using live rates.
// GET /latest?amount=..&from=..&to=.. returns the converted value under
// rates[to].
func (c *Client) Latest(ctx context.Context, amount float64, from, to string) (float64, error) {
	q := url.Values{}
	q.Set("amount", strconv.FormatFloat(amount, 'f', -1, 64))
	q.Set("from", from)
	q.Set("to", to)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/latest?"+q.Encode(), nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return 0, fmt.Errorf("rate lookup %s->%s: status %d", from, to, resp.StatusCode)
	}

	var body latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("rate lookup %s->%s: %w", from, to, err)
	}
	v, ok := body.Rates[to]
	if !ok {
		return 0, fmt.Errorf("rate lookup %s->%s: currency missing from response", from, to)
	}
	return v, nil
}

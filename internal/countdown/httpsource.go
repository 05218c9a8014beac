package countdown

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/heartmarshall/promptcycle-backend/pkg/cycle"
)

// HTTPMarkSource reads the open mark from the API deadline endpoint.
type HTTPMarkSource struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewHTTPMarkSource creates a source against baseURL authenticated with a
// bearer token. A nil client uses http.DefaultClient.
func NewHTTPMarkSource(baseURL, token string, client *http.Client) *HTTPMarkSource {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPMarkSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  client,
	}
}

type deadlineBody struct {
	Opened   bool       `json:"opened"`
	OpenedAt *time.Time `json:"openedAt"`
}

// OpenedAt implements MarkSource. A date without a prompt counts as not
// opened.
func (h *HTTPMarkSource) OpenedAt(ctx context.Context, date cycle.Date) (*time.Time, error) {
	u := h.baseURL + "/v1/prompts/" + url.PathEscape(date.String()) + "/deadline"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+h.token)
	req.Header.Set("Accept", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get deadline: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("get deadline: unexpected status %d", resp.StatusCode)
	}

	var body deadlineBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode deadline: %w", err)
	}
	if !body.Opened || body.OpenedAt == nil {
		return nil, nil
	}
	return body.OpenedAt, nil
}

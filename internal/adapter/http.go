package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/rcorral/go-robinhood/internal/config"
	"github.com/rcorral/go-robinhood/internal/logger"
	"github.com/rcorral/go-robinhood/internal/utils"
	"github.com/rcorral/go-robinhood/models"
)

type httpAPIAdapter struct {
	client  *utils.HTTPClient
	headers HeaderSource

	logger *logger.Logger
}

// NewHTTPAPIAdapter constructs the resty-backed implementation of
// [APIAdapter]. It normalises and validates the API address from adapterCfg,
// configures the underlying HTTP client with the resolved base URL and
// request timeout, and attaches headers to each request from the given
// HeaderSource.
//
// Returns an error if adapterCfg.APIAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPAPIAdapter(adapterCfg config.ClientAdapter, headers HeaderSource, logger *logger.Logger) (APIAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.APIAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter api address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpAPIAdapter{client: client, headers: headers, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Get implements [APIAdapter].
func (h *httpAPIAdapter) Get(ctx context.Context, uri string, query url.Values) ([]byte, error) {
	req := h.request(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}

	resp, err := req.Get(uri)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", uri, err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

// Post implements [APIAdapter].
func (h *httpAPIAdapter) Post(ctx context.Context, uri string, form url.Values) ([]byte, error) {
	req := h.request(ctx)
	if len(form) > 0 {
		req.SetFormDataFromValues(form)
	}

	resp, err := req.Post(uri)
	if err != nil {
		return nil, fmt.Errorf("post %s: %w", uri, err)
	}
	if err = mapAPIError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpAPIAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeaders(h.headers.Headers())
}

// mapAPIError converts a non-2xx response into a *models.APIError carrying
// the body's detail/message fields verbatim. A body that is not JSON becomes
// the Message as-is.
func mapAPIError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	apiErr := &models.APIError{StatusCode: resp.StatusCode()}
	body := strings.TrimSpace(string(resp.Body()))
	if err := json.Unmarshal([]byte(body), apiErr); err != nil {
		apiErr.Message = body
	}
	if apiErr.Detail == "" && apiErr.Message == "" {
		apiErr.Message = http.StatusText(resp.StatusCode())
	}

	return apiErr
}

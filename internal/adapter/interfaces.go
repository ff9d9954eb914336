// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for talking to the brokerage
// REST API.
//
// The primary abstraction is [APIAdapter]: a generic "send authenticated
// request, get JSON or a typed failure" capability. Endpoint semantics live
// one level up, in the service layer; the adapter only performs the request
// under the header snapshot supplied by its [HeaderSource] and maps non-2xx
// responses to *models.APIError so that callers can inspect the server's
// detail/message fields (e.g. with [errors.As]).
package adapter

import (
	"context"
	"net/url"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/api_adapter_mock.go -package=mock

// HeaderSource supplies the header set for each outgoing request. The session
// state implements this: the snapshot includes the Authorization header
// whenever a token is present.
type HeaderSource interface {
	Headers() map[string]string
}

// APIAdapter performs HTTP requests against the brokerage API.
//
// uri may be a path relative to the configured API address or an absolute
// URL; the API cross-references resources (instruments, cancel links) by
// absolute URL, so both forms occur in normal operation.
type APIAdapter interface {
	// Get issues a GET request with the given query parameters and returns
	// the raw response body. Returns *models.APIError (wrapped) for non-2xx
	// responses and a plain error for network-level failures.
	Get(ctx context.Context, uri string, query url.Values) ([]byte, error)

	// Post issues a form-encoded POST request and returns the raw response
	// body. A nil form posts an empty body. Error behavior matches Get.
	Post(ctx context.Context, uri string, form url.Values) ([]byte, error)
}

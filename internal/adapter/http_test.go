// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rcorral/go-robinhood/internal/config"
	"github.com/rcorral/go-robinhood/internal/logger"
	"github.com/rcorral/go-robinhood/internal/session"
	"github.com/rcorral/go-robinhood/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter builds an httpAPIAdapter pointed at a test server, with the
// real session state as its header source.
func newTestAdapter(t *testing.T, serverURL string) (*httpAPIAdapter, *session.State) {
	t.Helper()
	state := session.New()
	adapterCfg := config.ClientAdapter{APIAddress: serverURL}

	a, err := NewHTTPAPIAdapter(adapterCfg, state, logger.Nop())
	require.NoError(t, err)
	return a.(*httpAPIAdapter), state
}

func TestNewHTTPAPIAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPAPIAdapter(config.ClientAdapter{}, session.New(), logger.Nop())
	require.Error(t, err)
}

func TestGet_SendsQueryAndDefaultHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/quotes/", r.URL.Path)
		assert.Equal(t, "AAPL,FB", r.URL.Query().Get("symbols"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[]}`))
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)
	body, err := a.Get(context.Background(), "/quotes/", url.Values{"symbols": {"AAPL,FB"}})

	require.NoError(t, err)
	assert.JSONEq(t, `{"results":[]}`, string(body))
}

func TestGet_AttachesAuthorizationWhenTokenSet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Token tok-1", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	a, state := newTestAdapter(t, srv.URL)
	state.SetToken("tok-1")

	_, err := a.Get(context.Background(), "/accounts/", nil)
	require.NoError(t, err)
}

func TestPost_SendsFormBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "jdoe", r.PostForm.Get("username"))
		assert.Equal(t, "hunter2", r.PostForm.Get("password"))
		_, _ = w.Write([]byte(`{"token":"tok-2"}`))
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)
	form := url.Values{"username": {"jdoe"}, "password": {"hunter2"}}
	body, err := a.Post(context.Background(), "/api-token-auth/", form)

	require.NoError(t, err)
	assert.JSONEq(t, `{"token":"tok-2"}`, string(body))
}

func TestGet_AbsoluteURLBypassesBase(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/instruments/abc/", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":"abc"}`))
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, "http://never-resolved.invalid")
	body, err := a.Get(context.Background(), srv.URL+"/instruments/abc/", nil)

	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"abc"}`, string(body))
}

func TestMapAPIError_DetailPreserved(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Invalid token."}`))
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)
	_, err := a.Get(context.Background(), "/quotes/", nil)

	require.Error(t, err)
	var apiErr *models.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid token.", apiErr.Detail)
}

func TestMapAPIError_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable"))
	}))
	defer srv.Close()

	a, _ := newTestAdapter(t, srv.URL)
	_, err := a.Get(context.Background(), "/quotes/", nil)

	var apiErr *models.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "upstream unavailable", apiErr.Message)
}

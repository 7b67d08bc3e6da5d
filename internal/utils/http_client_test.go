package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient_Independent(t *testing.T) {
	a, b := NewHTTPClient(), NewHTTPClient()

	require.NotNil(t, a.Client)
	assert.NotSame(t, a.Client, b.Client)
}

func TestNewHTTPClient_Options(t *testing.T) {
	var gotUser, gotPass, gotUA, gotAccept string
	var gotAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, gotAuth = r.BasicAuth()
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
	}))
	defer srv.Close()

	c := NewHTTPClient(
		WithTimeout(time.Second),
		WithBasicAuth("proxy", "secret"),
		WithUserAgent("vaultage-test"),
	)
	_, err := c.R().Get(srv.URL)
	require.NoError(t, err)

	assert.Equal(t, time.Second, c.GetClient().Timeout)
	assert.True(t, gotAuth)
	assert.Equal(t, "proxy", gotUser)
	assert.Equal(t, "secret", gotPass)
	assert.Equal(t, "vaultage-test", gotUA)
	assert.Equal(t, "application/json", gotAccept)
}

func TestNewHTTPClient_IgnoresPartialOptions(t *testing.T) {
	var gotAuth bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _, gotAuth = r.BasicAuth()
	}))
	defer srv.Close()

	c := NewHTTPClient(WithTimeout(0), WithBasicAuth("proxy", ""))
	_, err := c.R().Get(srv.URL)
	require.NoError(t, err)

	assert.False(t, gotAuth)
	assert.Zero(t, c.GetClient().Timeout)
}

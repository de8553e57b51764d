package sevdesk

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(Config{Token: "test-token", BaseURL: srv.URL})
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresToken(t *testing.T) {
	_, err := NewClient(Config{})
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestNewClientDefaultsBaseURL(t *testing.T) {
	client, err := NewClient(Config{Token: "t"})
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, client.baseURL)
}

func TestFetchListUnwrapsEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "/Contact", r.URL.Path)
		w.Write([]byte(`{"objects":[{"id":"1","name":"Acme"}]}`))
	})

	raw, err := client.ListContacts(context.Background(), nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"1","name":"Acme"}]`, string(raw))
}

func TestQueryParametersReachTheWire(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "50", r.URL.Query().Get("limit"))
		assert.Equal(t, "7", r.URL.Query().Get("contact[id]"))
		assert.Equal(t, "Contact", r.URL.Query().Get("contact[objectName]"))
		w.Write([]byte(`{"objects":[]}`))
	})

	q := url.Values{}
	q.Set("limit", "50")
	q.Set("contact[id]", "7")
	q.Set("contact[objectName]", "Contact")

	_, err := client.ListInvoices(context.Background(), q)
	require.NoError(t, err)
}

func TestErrorEnvelopeBecomesAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"code":151,"message":"Authentication required"}}`))
	})

	_, err := client.GetContact(context.Background(), "1", nil)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 151, apiErr.Code)
	assert.Equal(t, "Authentication required", apiErr.Message)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "sevDesk API Error (151): Authentication required", apiErr.Error())
}

func TestUnrecognizedErrorBodyBecomesRequestError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	})

	_, err := client.GetContact(context.Background(), "1", nil)
	require.Error(t, err)

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Contains(t, reqErr.Error(), "502")
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestCreateSendsJSONBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Write([]byte(`{"objects":{"id":"9"}}`))
	})

	raw, err := client.CreateContact(context.Background(), map[string]any{"name": "Acme"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"9"}`, string(raw))
}

func TestRemoveIssuesDelete(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/Contact/4", r.URL.Path)
		w.Write([]byte(`{"objects":null}`))
	})

	err := client.DeleteContact(context.Background(), "4")
	assert.NoError(t, err)
}

func TestEnvelopeLessResponsePassesThrough(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Tools/getVersion", r.URL.Path)
		w.Write([]byte(`{"version":"9.12"}`))
	})

	raw, err := client.GetSystemVersion(context.Background())
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":"9.12"}`, string(raw))
}

func TestGetNextOrderNumber(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "AN", r.URL.Query().Get("orderType"))
		assert.Equal(t, "true", r.URL.Query().Get("useNextNumber"))
		w.Write([]byte(`{"objects":"AN-1007"}`))
	})

	number, err := client.GetNextOrderNumber(context.Background(), "AN")
	require.NoError(t, err)
	assert.Equal(t, "AN-1007", number)
}

func TestGetInvoicePdfRequestsDownload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/Invoice/12/getPdf", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("download"))
		w.Write([]byte(`{"objects":{"filename":"invoice.pdf"}}`))
	})

	raw, err := client.GetInvoicePdf(context.Background(), "12")
	require.NoError(t, err)
	assert.JSONEq(t, `{"filename":"invoice.pdf"}`, string(raw))
}

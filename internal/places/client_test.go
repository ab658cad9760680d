package places

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roam-backend/internal/domain"
)

func newTestClient(t *testing.T, upstream http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(upstream)
	t.Cleanup(server.Close)

	client := NewClient("secret-key", 1000)
	client.BaseURL = server.URL
	return client
}

func TestSearchSendsLocalityAutocompleteRequest(t *testing.T) {
	var seen *http.Request
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = r.Clone(context.Background())
		fmt.Fprint(w, `{"predictions":[]}`)
	})

	body, err := client.Search(context.Background(), "lisb")
	require.NoError(t, err)
	assert.JSONEq(t, `{"predictions":[]}`, string(body))

	require.NotNil(t, seen)
	assert.Equal(t, "/place/autocomplete/json", seen.URL.Path)
	assert.Equal(t, "locality", seen.URL.Query().Get("types"))
	assert.Equal(t, "lisb", seen.URL.Query().Get("input"))
	assert.Equal(t, "secret-key", seen.URL.Query().Get("key"))
}

func TestInfoSendsGeocodeRequest(t *testing.T) {
	var seen *http.Request
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		seen = r.Clone(context.Background())
		fmt.Fprint(w, `{"results":[{"formatted_address":"Lisbon, Portugal"}]}`)
	})

	body, err := client.Info(context.Background(), "place-123")
	require.NoError(t, err)
	assert.Contains(t, string(body), "Lisbon, Portugal")

	require.NotNil(t, seen)
	assert.Equal(t, "/geocode/json", seen.URL.Path)
	assert.Equal(t, "place-123", seen.URL.Query().Get("place_id"))
	assert.Equal(t, "secret-key", seen.URL.Query().Get("key"))
}

func TestResponseIsRelayedVerbatim(t *testing.T) {
	raw := `{"status":"ZERO_RESULTS","predictions":[],"extra":{"a":[1,2,3]}}`
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, raw)
	})

	body, err := client.Search(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.Equal(t, raw, string(body))
}

func TestEmptyInputsRejectedBeforeUpstream(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("upstream must not be called")
	})

	_, err := client.Search(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrMissingField)

	_, err = client.Info(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrMissingField)
}

func TestUpstreamErrorStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusForbidden)
	})

	_, err := client.Search(context.Background(), "paris")
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestUnreachableUpstream(t *testing.T) {
	client := NewClient("secret-key", 1000)
	client.BaseURL = "http://127.0.0.1:1"

	_, err := client.Info(context.Background(), "place-123")
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

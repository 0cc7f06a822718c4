package recommend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestHTTPAdvisorClient_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req recommendRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"Artisan Sourdough Bread"}, req.CartItems)

		json.NewEncoder(w).Encode(recommendResponse{
			RecommendedItems: []string{"Almond Butter", "Free-Range Eggs"},
		})
	}))
	defer srv.Close()

	client := NewHTTPAdvisorClient(srv.URL, time.Second, testLogger())

	items, err := client.Recommend(context.Background(), []string{"Artisan Sourdough Bread"})

	require.NoError(t, err)
	assert.Equal(t, []string{"Almond Butter", "Free-Range Eggs"}, items)
}

func TestHTTPAdvisorClient_EmptyCartSkipsCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := NewHTTPAdvisorClient(srv.URL, time.Second, testLogger())

	items, err := client.Recommend(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, items)
	assert.False(t, called, "empty cart must not reach the advisor")
}

func TestHTTPAdvisorClient_NonOKStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewHTTPAdvisorClient(srv.URL, time.Second, testLogger())

	_, err := client.Recommend(context.Background(), []string{"Kombucha"})

	assert.Error(t, err)
}

func TestHTTPAdvisorClient_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewHTTPAdvisorClient(srv.URL, time.Second, testLogger())

	// Distinct carts so singleflight does not collapse the calls.
	carts := [][]string{{"a"}, {"b"}, {"c"}, {"d"}, {"e"}}
	for _, cart := range carts {
		_, err := client.Recommend(context.Background(), cart)
		assert.Error(t, err)
	}

	// The breaker tripped after the third failure; later calls never reach
	// the advisor.
	assert.Equal(t, 3, hits)
}

func TestHTTPAdvisorClient_UnreachableAdvisor(t *testing.T) {
	client := NewHTTPAdvisorClient("http://127.0.0.1:1/recommendations", 100*time.Millisecond, testLogger())

	_, err := client.Recommend(context.Background(), []string{"Kombucha"})

	assert.Error(t, err)
}

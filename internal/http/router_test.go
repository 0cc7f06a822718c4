package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	catalogdomain "github.com/greenbasket/storefront/internal/catalog/domain"
	catalogservice "github.com/greenbasket/storefront/internal/catalog/service"
	"github.com/greenbasket/storefront/internal/order"
	"github.com/greenbasket/storefront/internal/session"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// advisorStub returns a fixed recommendation list without leaving the process.
type advisorStub struct {
	names []string
}

func (a advisorStub) Recommend(ctx context.Context, cartItems []string) ([]string, error) {
	return a.names, nil
}

func testCatalog() *catalogservice.Catalog {
	return catalogservice.NewCatalog([]catalogdomain.Product{
		{ID: 1, Name: "Organic Whole Milk", Description: "Creamy whole milk", Price: 4.29, Category: "Dairy"},
		{ID: 2, Name: "Artisan Sourdough Bread", Description: "Freshly baked loaf", Price: 5.49, Category: "Bakery"},
		{ID: 3, Name: "Kombucha", Description: "Ginger lemon brew", Price: 4.99, Category: "Beverages"},
	})
}

type testServer struct {
	t       *testing.T
	router  http.Handler
	tracker *order.Tracker
}

func newTestServer(t *testing.T, advisor advisorStub) *testServer {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	catalog := testCatalog()
	registry := session.NewRegistry(30*time.Minute, advisor, catalog, log)
	t.Cleanup(func() { registry.Close() })

	tracker := order.NewTracker(3*time.Second, nil)

	router := NewRouter(RouterDeps{
		Catalog:        catalog,
		Registry:       registry,
		Tracker:        tracker,
		RequestTimeout: 5 * time.Second,
	})

	return &testServer{t: t, router: router, tracker: tracker}
}

// testClient plays one shopper: it carries the session cookie across requests
// the way a browser would.
type testClient struct {
	t      *testing.T
	server *testServer
	cookie *http.Cookie
}

func (ts *testServer) client() *testClient {
	return &testClient{t: ts.t, server: ts}
}

func (c *testClient) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	c.t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(c.t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}

	rec := httptest.NewRecorder()
	c.server.router.ServeHTTP(rec, req)

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == sessionCookieName {
			c.cookie = ck
		}
	}
	return rec
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func TestRouter_Health(t *testing.T) {
	ts := newTestServer(t, advisorStub{})

	rec := ts.client().do(http.MethodGet, "/health", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	decodeJSON(t, rec, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestRouter_SessionCookieIsMintedOnce(t *testing.T) {
	ts := newTestServer(t, advisorStub{})
	c := ts.client()

	rec := c.do(http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, c.cookie)
	first := c.cookie.Value

	rec = c.do(http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Result().Cookies(), "a returning shopper keeps their cookie")
	assert.Equal(t, first, c.cookie.Value)
}

func TestRouter_SessionsAreIsolated(t *testing.T) {
	ts := newTestServer(t, advisorStub{})
	alice := ts.client()
	bob := ts.client()

	rec := alice.do(http.MethodPost, "/api/v1/cart/items", AddItemRequestDTO{ProductID: 1})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = bob.do(http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var cart CartResponseDTO
	decodeJSON(t, rec, &cart)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.TotalQuantity)
}

func TestRouter_ListProducts(t *testing.T) {
	ts := newTestServer(t, advisorStub{})

	rec := ts.client().do(http.MethodGet, "/api/v1/products/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var products []catalogdomain.Product
	decodeJSON(t, rec, &products)
	require.Len(t, products, 3)
	assert.Equal(t, "Organic Whole Milk", products[0].Name)
}

func TestRouter_GetProduct(t *testing.T) {
	ts := newTestServer(t, advisorStub{})
	c := ts.client()

	rec := c.do(http.MethodGet, "/api/v1/products/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var product catalogdomain.Product
	decodeJSON(t, rec, &product)
	assert.Equal(t, "Artisan Sourdough Bread", product.Name)
	assert.Equal(t, 5.49, product.Price)

	rec = c.do(http.MethodGet, "/api/v1/products/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = c.do(http.MethodGet, "/api/v1/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

package session

import (
	"context"
	"io"
	"testing"
	"time"

	catalogdomain "github.com/greenbasket/storefront/internal/catalog/domain"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAdvisor struct{}

func (stubAdvisor) Recommend(context.Context, []string) ([]string, error) {
	return nil, nil
}

type stubResolver struct{}

func (stubResolver) FindByName(string) (catalogdomain.Product, bool) {
	return catalogdomain.Product{}, false
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func setupRegistry(t *testing.T, ttl time.Duration) *Registry {
	t.Helper()
	r := NewRegistry(ttl, stubAdvisor{}, stubResolver{}, testLogger())
	t.Cleanup(func() { r.Close() })
	return r
}

func TestRegistry_GetOrCreateIsStablePerID(t *testing.T) {
	r := setupRegistry(t, time.Minute)

	id := r.NewID()
	first := r.GetOrCreate(id)
	second := r.GetOrCreate(id)

	assert.Same(t, first, second)
	require.NotNil(t, first.Cart)
	require.NotNil(t, first.Checkout)
	require.NotNil(t, first.Panel)
}

func TestRegistry_DistinctIDsGetIsolatedState(t *testing.T) {
	r := setupRegistry(t, time.Minute)

	a := r.GetOrCreate(r.NewID())
	b := r.GetOrCreate(r.NewID())

	a.Cart.AddToCart(catalogdomain.Product{ID: 1, Name: "Milk", Price: 24})

	assert.False(t, a.Cart.Snapshot().IsEmpty())
	assert.True(t, b.Cart.Snapshot().IsEmpty())
}

func TestRegistry_SweepExpiresIdleSessions(t *testing.T) {
	r := setupRegistry(t, time.Minute)

	current := time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	r.now = func() time.Time { return current }

	idle := r.NewID()
	active := r.NewID()
	r.GetOrCreate(idle)
	r.GetOrCreate(active)

	// The active session is touched again later; the idle one is not.
	current = current.Add(2 * time.Minute)
	r.GetOrCreate(active)

	r.expireSessions()

	r.mu.Lock()
	defer r.mu.Unlock()
	assert.NotContains(t, r.sessions, idle)
	assert.Contains(t, r.sessions, active)
}

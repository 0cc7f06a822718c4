package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
	cartservice "github.com/greenbasket/storefront/internal/cart/service"
	checkoutservice "github.com/greenbasket/storefront/internal/checkout/service"
	"github.com/greenbasket/storefront/internal/recommend"
	"github.com/sirupsen/logrus"
)

const (
	// CleanupInterval is how often the background sweep runs.
	CleanupInterval = 1 * time.Minute
)

// Session bundles the per-shopper state: the cart store (single writer for
// cart state), the checkout machine and the recommendation panel.
type Session struct {
	ID       string
	Cart     *cartservice.Store
	Checkout *checkoutservice.Machine

	Panel *recommend.Panel

	lastSeen time.Time
}

// Registry hands out sessions keyed by cookie ID and expires idle ones with
// a background sweep.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session

	ttl      time.Duration
	advisor  recommend.AdvisorClient
	resolver recommend.Resolver
	log      *logrus.Logger
	now      func() time.Time

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

func NewRegistry(ttl time.Duration, advisor recommend.AdvisorClient, resolver recommend.Resolver, log *logrus.Logger) *Registry {
	r := &Registry{
		sessions:    make(map[string]*Session),
		ttl:         ttl,
		advisor:     advisor,
		resolver:    resolver,
		log:         log,
		now:         time.Now,
		stopCleanup: make(chan struct{}),
	}

	r.wg.Add(1)
	go r.cleanupLoop()

	return r
}

// NewID mints a session ID for the cookie.
func (r *Registry) NewID() string {
	return uuid.New().String()
}

// GetOrCreate returns the session for the given ID, creating it on first
// sight, and marks it live for the sweep.
func (r *Registry) GetOrCreate(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[id]
	if !ok {
		cart := cartservice.NewStore()
		s = &Session{
			ID:       id,
			Cart:     cart,
			Checkout: checkoutservice.NewMachine(cart, r.now),
			Panel:    recommend.NewPanel(r.advisor, r.resolver, r.log),
		}
		r.sessions[id] = s
	}
	s.lastSeen = r.now()
	return s
}

func (r *Registry) cleanupLoop() {
	defer r.wg.Done()

	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.expireSessions()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *Registry) expireSessions() {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)
	for id, s := range r.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(r.sessions, id)
			r.log.Debugf("expired idle session %s", id)
		}
	}
}

// Close stops the background sweep and waits for it to finish.
func (r *Registry) Close() error {
	close(r.stopCleanup)
	r.wg.Wait()
	return nil
}

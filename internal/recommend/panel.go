package recommend

import (
	"context"
	"sync"

	catalogdomain "github.com/greenbasket/storefront/internal/catalog/domain"
	"github.com/sirupsen/logrus"
)

// Resolver maps a recommended display name back to a catalog product.
type Resolver interface {
	FindByName(name string) (catalogdomain.Product, bool)
}

// Panel holds one session's recommendation widget state. Refreshes are
// asynchronous and last-request-wins: each refresh takes a sequence number,
// and a result is applied only if no newer refresh was issued while it was
// in flight. Superseded or failed results are ignored; the panel degrades
// to empty, never to an error.
type Panel struct {
	client   AdvisorClient
	resolver Resolver
	log      *logrus.Logger

	mu      sync.Mutex
	seq     uint64
	pending bool
	items   []catalogdomain.Product
}

func NewPanel(client AdvisorClient, resolver Resolver, log *logrus.Logger) *Panel {
	return &Panel{
		client:   client,
		resolver: resolver,
		log:      log,
	}
}

// Refresh issues a new advisor request for the given cart item names and
// returns immediately. An empty cart clears the panel without calling out.
func (p *Panel) Refresh(names []string) {
	p.mu.Lock()
	p.seq++
	seq := p.seq

	if len(names) == 0 {
		p.items = nil
		p.pending = false
		p.mu.Unlock()
		return
	}

	p.pending = true
	p.mu.Unlock()

	// Detached from any request context: the caller does not wait, and the
	// client enforces its own timeout.
	go p.fetch(context.Background(), seq, names)
}

func (p *Panel) fetch(ctx context.Context, seq uint64, names []string) {
	recommended, err := p.client.Recommend(ctx, names)
	if err != nil {
		p.log.Warnf("recommendations unavailable, showing none: %v", err)
		recommended = nil
	}

	resolved := p.resolve(recommended)

	p.mu.Lock()
	defer p.mu.Unlock()
	if seq != p.seq {
		// The cart changed while this request was in flight; a newer request
		// owns the panel now.
		return
	}
	p.items = resolved
	p.pending = false
}

// resolve drops any name the catalog does not know. The advisor is not
// guaranteed to emit only catalog-known names.
func (p *Panel) resolve(names []string) []catalogdomain.Product {
	var products []catalogdomain.Product
	for _, name := range names {
		if product, ok := p.resolver.FindByName(name); ok {
			products = append(products, product)
		}
	}
	return products
}

// Current returns the resolved recommendations and whether a refresh is
// still in flight.
func (p *Panel) Current() ([]catalogdomain.Product, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	items := make([]catalogdomain.Product, len(p.items))
	copy(items, p.items)
	return items, p.pending
}

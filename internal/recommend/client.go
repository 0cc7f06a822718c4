package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker/v2"
	"golang.org/x/sync/singleflight"
)

// AdvisorClient maps cart item names to recommended product names. The
// advisor is an opaque boundary; no guarantee its names exist in the
// catalog.
type AdvisorClient interface {
	Recommend(ctx context.Context, cartItems []string) ([]string, error)
}

type recommendRequest struct {
	CartItems []string `json:"cartItems"`
}

type recommendResponse struct {
	RecommendedItems []string `json:"recommendedItems"`
}

type httpAdvisorClient struct {
	url     string
	client  *http.Client
	log     *logrus.Logger
	breaker *gobreaker.CircuitBreaker[[]string]
	sfg     singleflight.Group // Collapses concurrent identical requests
}

func NewHTTPAdvisorClient(url string, timeout time.Duration, log *logrus.Logger) AdvisorClient {
	breaker := gobreaker.NewCircuitBreaker[[]string](gobreaker.Settings{
		Name: "recommendation-advisor",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warnf("AdvisorClient: breaker %s moved from %s to %s", name, from, to)
		},
	})
	return &httpAdvisorClient{
		url: url,
		client: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		breaker: breaker,
	}
}

func (c *httpAdvisorClient) Recommend(ctx context.Context, cartItems []string) ([]string, error) {
	if len(cartItems) == 0 {
		return nil, nil
	}

	key := strings.Join(cartItems, "\x1f")
	v, err, _ := c.sfg.Do(key, func() (interface{}, error) {
		return c.breaker.Execute(func() ([]string, error) {
			return c.call(ctx, cartItems)
		})
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

func (c *httpAdvisorClient) call(ctx context.Context, cartItems []string) ([]string, error) {
	body, err := json.Marshal(recommendRequest{CartItems: cartItems})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal advisor request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(body))
	if err != nil {
		c.log.Errorf("AdvisorClient: failed to create request: %v", err)
		return nil, fmt.Errorf("failed to create advisor request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Errorf("AdvisorClient: request failed: %v", err)
		return nil, fmt.Errorf("failed to reach advisor: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Errorf("AdvisorClient: advisor returned status %d", resp.StatusCode)
		return nil, fmt.Errorf("advisor returned status %d", resp.StatusCode)
	}

	var out recommendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.log.Errorf("AdvisorClient: failed to decode response: %v", err)
		return nil, fmt.Errorf("failed to decode advisor response: %w", err)
	}

	return out.RecommendedItems, nil
}

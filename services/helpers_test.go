package services_test

import (
	"context"
	"sync"

	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/events"
	"github.com/yaksha-ameet-khemani/e-mall-pro-connect/models"
)

// --- Recording publisher ---

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.OrderEvent
}

func (p *recordingPublisher) PublishOrderEvent(_ context.Context, evt events.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, evt)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

// --- Map-backed product cache ---

type memoryCache struct {
	products map[string]models.Product
	list     []models.Product
	listSet  bool
}

func newMemoryCache() *memoryCache {
	return &memoryCache{products: make(map[string]models.Product)}
}

func (c *memoryCache) GetProduct(_ context.Context, id string) (*models.Product, bool) {
	p, ok := c.products[id]
	if !ok {
		return nil, false
	}
	return &p, true
}

func (c *memoryCache) SetProduct(_ context.Context, p *models.Product) {
	c.products[p.ID.Hex()] = *p
}

func (c *memoryCache) GetProductList(_ context.Context) ([]models.Product, bool) {
	return c.list, c.listSet
}

func (c *memoryCache) SetProductList(_ context.Context, products []models.Product) {
	c.list, c.listSet = products, true
}

func (c *memoryCache) InvalidateProduct(_ context.Context, id string) {
	delete(c.products, id)
	c.list, c.listSet = nil, false
}

func (c *memoryCache) InvalidateList(_ context.Context) {
	c.list, c.listSet = nil, false
}

// --- Presigner ---

type stubPresigner struct {
	keys []string
}

func (p *stubPresigner) PresignPut(_ context.Context, key, contentType string) (string, map[string]string, error) {
	p.keys = append(p.keys, key)
	return "https://bucket.s3.amazonaws.com/" + key + "?X-Amz-Signature=abc", map[string]string{"Content-Type": contentType}, nil
}

func ptr[T any](v T) *T { return &v }

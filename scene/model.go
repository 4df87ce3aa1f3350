package scene

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -destination=./mocks/loader_mock.go -package=mocks . ModelLoader

// ErrModelNotFound is returned when a loader has no asset under a name.
var ErrModelNotFound = errors.New("model not found")

// Model is a loaded asset. Each gameplay instance should own its own clone.
type Model struct {
	Name string
	Root *Group
}

// Clone returns an independent copy of the model's graph.
func (m *Model) Clone() *Model {
	return &Model{Name: m.Name, Root: m.Root.Clone()}
}

// ModelLoader resolves asset names to models. Implementations may block
// (network, disk) and must honor ctx cancellation.
type ModelLoader interface {
	LoadModel(ctx context.Context, name string) (*Model, error)
}

// Cache memoizes another loader. Each name is fetched once, concurrent
// requests for the same name share one fetch, and callers get clones.
type Cache struct {
	next ModelLoader

	flight singleflight.Group

	mu     sync.Mutex
	models map[string]*Model
}

// NewCache wraps next.
func NewCache(next ModelLoader) *Cache {
	return &Cache{
		next:   next,
		models: make(map[string]*Model),
	}
}

// LoadModel implements ModelLoader. A shared fetch runs under the context of
// the caller that started it; the others stop waiting when their own ctx ends.
func (c *Cache) LoadModel(ctx context.Context, name string) (*Model, error) {
	if m, ok := c.cached(name); ok {
		return m.Clone(), nil
	}

	ch := c.flight.DoChan(name, func() (interface{}, error) {
		// a flight that finished between the lookup above and DoChan
		if m, ok := c.cached(name); ok {
			return m, nil
		}
		m, err := c.next.LoadModel(ctx, name)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.models[name] = m
		c.mu.Unlock()
		return m, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return nil, r.Err
		}
		return r.Val.(*Model).Clone(), nil
	}
}

func (c *Cache) cached(name string) (*Model, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.models[name]
	return m, ok
}

// StaticLoader serves placeholder models built in memory. Used by the native
// preview and by tests, where no asset pipeline exists.
type StaticLoader map[string]func() *Group

// LoadModel implements ModelLoader.
func (s StaticLoader) LoadModel(ctx context.Context, name string) (*Model, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	build, ok := s[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrModelNotFound, name)
	}
	root := build()
	if root == nil {
		root = NewGroup(name)
	}
	return &Model{Name: name, Root: root}, nil
}

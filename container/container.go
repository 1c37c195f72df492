package container

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNotBound is returned by Get when nothing is registered under a key.
var ErrNotBound = errors.New("container: no binding registered")

// Factory builds a concrete value from the container.
type Factory func(c *Container) any

type binding struct {
	factory   Factory
	singleton bool
}

// Container holds the application's services, keyed by name.
type Container struct {
	mu        sync.RWMutex
	bindings  map[string]*binding
	instances map[string]any
	aliases   map[string]string
}

// New creates an empty container bound to itself under "container".
func New() *Container {
	c := &Container{
		bindings:  make(map[string]*binding),
		instances: make(map[string]any),
		aliases:   make(map[string]string),
	}
	c.Instance("container", c)
	return c
}

// ── Registration ──────────────────────────────────────────────────────────────

// Bind registers a factory that runs on every Make.
func (c *Container) Bind(abstract string, factory Factory) {
	c.bind(abstract, factory, false)
}

// Singleton registers a factory whose result is cached after first resolution.
//
//	c.Singleton("validator", func(c *container.Container) any {
//	    return validation.New(validation.WithLogger(container.Resolve[*slog.Logger](c, "logger")))
//	})
func (c *Container) Singleton(abstract string, factory Factory) {
	c.bind(abstract, factory, true)
}

func (c *Container) bind(abstract string, factory Factory, singleton bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(abstract)
	delete(c.instances, key)
	c.bindings[key] = &binding{factory: factory, singleton: singleton}
}

// Instance registers a pre-built value.
func (c *Container) Instance(abstract string, instance any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := c.canonical(abstract)
	delete(c.bindings, key)
	c.instances[key] = instance
}

// Alias makes alias resolve to abstract.
func (c *Container) Alias(abstract, alias string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aliases[alias] = abstract
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Get resolves abstract, returning ErrNotBound if nothing is registered.
func (c *Container) Get(abstract string) (any, error) {
	c.mu.RLock()
	key := c.canonical(abstract)
	if inst, ok := c.instances[key]; ok {
		c.mu.RUnlock()
		return inst, nil
	}
	b, ok := c.bindings[key]
	c.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w for [%s]", ErrNotBound, abstract)
	}

	// Factories may resolve other services, so they run without the lock.
	instance := b.factory(c)
	if !b.singleton {
		return instance, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if inst, ok := c.instances[key]; ok {
		return inst, nil
	}
	c.instances[key] = instance
	return instance, nil
}

// Make resolves abstract and panics if it is not bound.
func (c *Container) Make(abstract string) any {
	instance, err := c.Get(abstract)
	if err != nil {
		panic(err.Error())
	}
	return instance
}

// Bound returns true if an abstract has been registered.
func (c *Container) Bound(abstract string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	key := c.canonical(abstract)
	_, hasBinding := c.bindings[key]
	_, hasInstance := c.instances[key]
	return hasBinding || hasInstance
}

// canonical resolves an alias to its canonical key (must hold mu).
func (c *Container) canonical(abstract string) string {
	if target, ok := c.aliases[abstract]; ok {
		return target
	}
	return abstract
}

// Resolve calls Make and type-asserts the result.
//
//	cfg := container.Resolve[*config.Config](c, "config")
func Resolve[T any](c *Container, abstract string) T {
	instance := c.Make(abstract)
	typed, ok := instance.(T)
	if !ok {
		panic(fmt.Sprintf("container: Resolve[%T]: [%s] resolved to %T", *new(T), abstract, instance))
	}
	return typed
}

package container

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ── Registration types ────────────────────────────────────────────────────────

// Producer builds a value. It receives the container performing the
// resolution so it can resolve its own dependencies.
type Producer func(c *Container) (any, error)

// registration is one entry of the registration table.
type registration struct {
	producer Producer
	lifetime Lifetime

	// singleton slot
	mu       sync.Mutex
	instance any
	resolved bool
}

// ── Container ─────────────────────────────────────────────────────────────────

// Container maps identifiers to producers and resolves them according to
// their Lifetime.
//
// It supports:
//   - Register / RegisterClass / RegisterInstance
//   - Resolve / Make / Resolve[T] (generic)
//   - CreateScope / ClearScope / Clear
//
// A Container is safe for concurrent use. A scope is meant to serve a single
// unit of work at a time.
type Container struct {
	mu sync.RWMutex

	// identifier → registration
	registrations map[any]*registration

	// identifier → value resolved during the current scope lifetime
	scoped map[any]any

	id     string
	parent *Container
	base   *zap.Logger
	logger *zap.Logger
}

// Option configures a Container.
type Option func(*Container)

// WithLogger sets the logger used for debug output. Scopes inherit it.
func WithLogger(l *zap.Logger) Option {
	return func(c *Container) {
		if l != nil {
			c.base = l
		}
	}
}

// New creates an empty container.
func New(opts ...Option) *Container {
	c := &Container{
		registrations: make(map[any]*registration),
		scoped:        make(map[any]any),
		id:            uuid.NewString(),
		base:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.base.With(zap.String("scope", c.id))
	return c
}

// SetLogger replaces the logger used for debug output. Scopes created
// afterwards inherit it; existing scopes keep the logger they were given.
func (c *Container) SetLogger(l *zap.Logger) {
	if l == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.base = l
	c.logger = l.With(zap.String("scope", c.id))
}

// ID returns the unique identifier of this container or scope.
func (c *Container) ID() string { return c.id }

// Parent returns the container this scope was derived from, or nil for a root.
func (c *Container) Parent() *Container { return c.parent }

// ── Registration ──────────────────────────────────────────────────────────────

// Register binds a producer to id. The lifetime defaults to Transient.
// Registering an id again replaces the previous binding.
//
//	c.Register("repo", func(c *container.Container) (any, error) {
//	    db, err := container.Resolve[*sql.DB](c, "db")
//	    if err != nil {
//	        return nil, err
//	    }
//	    return &UserRepository{DB: db}, nil
//	}, container.Scoped)
func (c *Container) Register(id any, producer Producer, lifetime ...Lifetime) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bind(id, &registration{producer: producer, lifetime: lifetimeOf(lifetime)})
}

// RegisterClass binds a zero-argument constructor to id. The constructor
// receives nothing from the container; use Register when it has dependencies.
//
//	c.RegisterClass("clock", func() any { return &SystemClock{} }, container.Singleton)
func (c *Container) RegisterClass(id any, ctor func() any, lifetime ...Lifetime) {
	c.Register(id, func(*Container) (any, error) { return ctor(), nil }, lifetime...)
}

// RegisterInstance binds a pre-built value as a singleton. Resolve returns
// exactly this value.
//
//	c.RegisterInstance("config", cfg)
func (c *Container) RegisterInstance(id any, instance any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bind(id, &registration{
		producer: func(*Container) (any, error) { return instance, nil },
		lifetime: Singleton,
		instance: instance,
		resolved: true,
	})
}

// bind is the internal registration helper (must hold mu.Lock).
func (c *Container) bind(id any, reg *registration) {
	// Drop a cached scoped value so it is rebuilt with the new producer
	delete(c.scoped, id)
	c.registrations[id] = reg
	c.logger.Debug("registered",
		zap.Stringer("id", idField{id}),
		zap.Stringer("lifetime", reg.lifetime))
}

// ── Resolution ────────────────────────────────────────────────────────────────

// Resolve returns the value bound to id.
//
// It fails with a *NotRegisteredError when id has no binding. Errors returned
// by a producer are passed through unchanged and nothing is cached, so the
// next call retries. Cyclic producers are not detected.
func (c *Container) Resolve(id any) (any, error) {
	c.mu.RLock()
	reg, ok := c.registrations[id]
	c.mu.RUnlock()

	if !ok {
		return nil, &NotRegisteredError{ID: describe(id)}
	}

	switch reg.lifetime {
	case Singleton:
		return c.resolveSingleton(reg)
	case Scoped:
		return c.resolveScoped(id, reg)
	default:
		return reg.producer(c)
	}
}

// Make resolves id and panics if resolution fails. Intended for bootstrap
// code where a missing binding is a programming error.
func (c *Container) Make(id any) any {
	instance, err := c.Resolve(id)
	if err != nil {
		panic(err)
	}
	return instance
}

// resolveSingleton fills the registration's slot on first use. The producer
// runs without holding the slot lock; when two callers race, the first value
// stored wins and both receive it.
func (c *Container) resolveSingleton(reg *registration) (any, error) {
	reg.mu.Lock()
	if reg.resolved {
		instance := reg.instance
		reg.mu.Unlock()
		return instance, nil
	}
	reg.mu.Unlock()

	instance, err := reg.producer(c)
	if err != nil {
		return nil, err
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	if !reg.resolved {
		reg.instance = instance
		reg.resolved = true
	}
	return reg.instance, nil
}

func (c *Container) resolveScoped(id any, reg *registration) (any, error) {
	c.mu.RLock()
	instance, ok := c.scoped[id]
	c.mu.RUnlock()
	if ok {
		return instance, nil
	}

	instance, err := reg.producer(c)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.scoped[id]; ok {
		return cached, nil
	}
	// Only cache while id is still bound to the registration that produced it
	if c.registrations[id] == reg {
		c.scoped[id] = instance
	}
	return instance, nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

// Has reports whether id is registered, whether or not it has been resolved.
func (c *Container) Has(id any) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.registrations[id]
	return ok
}

// Identifiers returns a snapshot of all registered identifiers (for debugging).
func (c *Container) Identifiers() []any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]any, 0, len(c.registrations))
	for id := range c.registrations {
		out = append(out, id)
	}
	return out
}

// ── Generics helper ───────────────────────────────────────────────────────────

// Resolve is a generic helper that resolves id and type-asserts the result.
//
//	// Instead of: v, err := c.Resolve("db"); db := v.(*sql.DB)
//	// Write:      db, err := container.Resolve[*sql.DB](c, "db")
func Resolve[T any](c *Container, id any) (T, error) {
	var zero T
	instance, err := c.Resolve(id)
	if err != nil {
		return zero, err
	}
	typed, ok := instance.(T)
	if !ok {
		return zero, &TypeMismatchError{
			ID:   describe(id),
			Want: reflect.TypeOf((*T)(nil)).Elem().String(),
			Got:  fmt.Sprintf("%T", instance),
		}
	}
	return typed, nil
}

// MustResolve is like Resolve but panics on any error.
func MustResolve[T any](c *Container, id any) T {
	typed, err := Resolve[T](c, id)
	if err != nil {
		panic(err)
	}
	return typed
}

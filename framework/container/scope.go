package container

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateScope derives a new container from c.
//
// Singleton bindings delegate to c, so the parent and every scope derived
// from it share one instance, built against the parent. Scoped and Transient
// bindings are copied with an empty cache, giving each scope its own Scoped
// instances. Later registrations on either side are not seen by the other.
//
//	scope := c.CreateScope()
//	defer scope.ClearScope()
func (c *Container) CreateScope() *Container {
	c.mu.RLock()
	defer c.mu.RUnlock()

	scope := &Container{
		registrations: make(map[any]*registration, len(c.registrations)),
		scoped:        make(map[any]any),
		id:            uuid.NewString(),
		parent:        c,
		base:          c.base,
	}
	scope.logger = scope.base.With(zap.String("scope", scope.id))

	for id, reg := range c.registrations {
		if reg.lifetime == Singleton {
			scope.registrations[id] = &registration{
				producer: c.delegate(reg),
				lifetime: Singleton,
			}
			continue
		}
		scope.registrations[id] = &registration{
			producer: reg.producer,
			lifetime: reg.lifetime,
		}
	}

	c.logger.Debug("scope created",
		zap.String("child", scope.id),
		zap.Int("bindings", len(scope.registrations)))
	return scope
}

// delegate returns a producer that resolves the parent's singleton slot.
func (c *Container) delegate(reg *registration) Producer {
	return func(*Container) (any, error) {
		return c.resolveSingleton(reg)
	}
}

// ClearScope drops every Scoped instance. Registrations and singleton values
// are kept, so the container can serve the next scope lifetime.
func (c *Container) ClearScope() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scoped = make(map[any]any)
	c.logger.Debug("scope cleared")
}

// Clear resets the container to its empty state.
func (c *Container) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.registrations = make(map[any]*registration)
	c.scoped = make(map[any]any)
	c.logger.Debug("container cleared")
}

// Package container provides a service container: a registry mapping
// identifiers to producers, resolved according to a lifetime.
//
// # Overview
//
// Calling code depends on an identifier rather than on a construction recipe.
// Producers resolve their own dependencies explicitly through the container
// they receive; there is no constructor reflection and no auto-wiring.
//
// # Identifiers
//
// Any comparable value works as an identifier. Three kinds are typical:
//
//	c.Register("mailer", newMailer)                          // string
//	var CacheKey = container.NewToken("cache")                // unique token
//	c.Register(CacheKey, newCache)
//	c.Register(container.TypeKey[Clock](), newClock)          // type as key
//
// # Lifetimes
//
//	// Transient: producer runs on every Resolve (default)
//	c.Register("id", func(c *container.Container) (any, error) { return uuid.New(), nil })
//
//	// Singleton: produced once, shared with every derived scope
//	c.Register("db", openDB, container.Singleton)
//
//	// Scoped: produced once per scope lifetime
//	c.Register("tx", beginTx, container.Scoped)
//
//	// Pre-built value (always Singleton)
//	c.RegisterInstance("config", cfg)
//
// # Resolving
//
//	raw, err := c.Resolve("db")
//	db, err := container.Resolve[*sql.DB](c, "db")
//	db := container.MustResolve[*sql.DB](c, "db")
//
// A missing binding yields a *NotRegisteredError (errors.Is ErrNotRegistered).
// Producer errors are returned unchanged and never cached.
//
// # Scopes
//
//	scope := c.CreateScope()       // one per unit of work
//	defer scope.ClearScope()
//	tx, err := scope.Resolve("tx") // Scoped: private to this scope
//	db, err := scope.Resolve("db") // Singleton: same instance as c.Resolve("db")
//
// Cyclic producers are not detected and recurse until the stack is exhausted.
//
// # Service Providers
//
//	registry := container.NewProviderRegistry(c)
//	registry.Register(&AppServiceProvider{})
//	err := registry.Boot()
package container

package container

// Lifetime controls how long a resolved value is cached.
type Lifetime int

const (
	// Transient runs the producer on every resolution.
	Transient Lifetime = iota
	// Singleton runs the producer at most once per registration and shares the
	// result with every scope derived from the owning container.
	Singleton
	// Scoped runs the producer at most once per scope lifetime.
	Scoped
)

// String returns the lowercase name of the lifetime.
func (l Lifetime) String() string {
	switch l {
	case Transient:
		return "transient"
	case Singleton:
		return "singleton"
	case Scoped:
		return "scoped"
	default:
		return "unknown"
	}
}

func lifetimeOf(lifetime []Lifetime) Lifetime {
	if len(lifetime) > 0 {
		return lifetime[0]
	}
	return Transient
}

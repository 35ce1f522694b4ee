package container

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopedCache_OnlyHoldsScopedBindings(t *testing.T) {
	c := New()
	built := 0
	c.Register("transient", func(*Container) (any, error) {
		built++
		return built, nil
	})
	c.Register("singleton", func(*Container) (any, error) { return new(int), nil }, Singleton)
	c.Register("scoped", func(*Container) (any, error) { return new(int), nil }, Scoped)

	scope := c.CreateScope()
	for _, target := range []*Container{c, scope} {
		_, err := target.Resolve("transient")
		require.NoError(t, err)
		_, err = target.Resolve("singleton")
		require.NoError(t, err)
	}
	assert.Empty(t, c.scoped)
	assert.Empty(t, scope.scoped)

	_, err := scope.Resolve("scoped")
	require.NoError(t, err)
	assert.Len(t, scope.scoped, 1)
	assert.Contains(t, scope.scoped, "scoped")
	assert.Empty(t, c.scoped)
}

func TestClearScope_KeepsSingletonAndTransientState(t *testing.T) {
	c := New()
	built := 0
	c.Register("transient", func(*Container) (any, error) {
		built++
		return built, nil
	})
	c.Register("singleton", func(*Container) (any, error) { return new(int), nil }, Singleton)

	single := c.Make("singleton")
	c.Make("transient")
	c.ClearScope()

	assert.Same(t, single, c.Make("singleton"))
	assert.Equal(t, 1, built)
	assert.Equal(t, 2, c.Make("transient"))
}

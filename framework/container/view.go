package container

import (
	"fmt"
	"sort"
)

// UnknownPropertyError is returned by View.Get for a name the view does not expose.
type UnknownPropertyError struct {
	Name string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("container: view has no property %q", e.Name)
}

// View exposes container bindings as named, read-only properties. Every Get
// goes back to the container, so Scoped and Transient values behave exactly
// as they would through Resolve.
//
//	v := container.NewView(scope, map[string]any{
//	    "user":    UserKey,
//	    "session": SessionKey,
//	})
//	user, err := v.Get("user")
type View struct {
	c     *Container
	props map[string]any
}

// NewView builds a view over c. props maps property names to identifiers.
func NewView(c *Container, props map[string]any) *View {
	copied := make(map[string]any, len(props))
	for name, id := range props {
		copied[name] = id
	}
	return &View{c: c, props: copied}
}

// Get resolves the identifier behind name.
func (v *View) Get(name string) (any, error) {
	id, ok := v.props[name]
	if !ok {
		return nil, &UnknownPropertyError{Name: name}
	}
	return v.c.Resolve(id)
}

// Names returns the exposed property names in sorted order.
func (v *View) Names() []string {
	names := make([]string, 0, len(v.props))
	for name := range v.props {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Container returns the container the view reads from.
func (v *View) Container() *Container { return v.c }

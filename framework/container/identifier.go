package container

import (
	"fmt"
	"reflect"
)

// Token is an opaque identifier. Two tokens are never equal, even when they
// share a name, so packages can declare private keys that cannot collide.
//
//	var RequestKey = container.NewToken("http.request")
//	c.RegisterInstance(RequestKey, r)
type Token struct {
	name string
}

// NewToken returns a new unique token. The name is used only for display.
func NewToken(name string) *Token {
	return &Token{name: name}
}

// Name returns the display name of the token.
func (t *Token) Name() string { return t.name }

// String implements fmt.Stringer.
func (t *Token) String() string { return "Token(" + t.name + ")" }

// TypeKey returns the reflect.Type of T for use as an identifier. Interface
// types work as well as concrete ones.
//
//	c.Register(container.TypeKey[UserRepository](), newRepo, container.Singleton)
//	repo, err := container.Resolve[UserRepository](c, container.TypeKey[UserRepository]())
func TypeKey[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// describe renders an identifier for error messages and logs. fmt recovers
// from a Stringer with a nil receiver, so a nil *Token renders as <nil>.
func describe(id any) string {
	if s, ok := id.(string); ok {
		return s
	}
	return fmt.Sprint(id)
}

// idField defers describe until a log entry is actually written.
type idField struct{ id any }

func (f idField) String() string { return describe(f.id) }

package runtime

import "sort"

// Environment provides lexical scoping for runtime values.
type Environment struct {
	values map[string]Value
	parent *Environment
}

// NewEnvironment creates a new environment, optionally nested under a parent.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]Value),
		parent: parent,
	}
}

// Parent exposes the lexical parent (nil when global).
func (e *Environment) Parent() *Environment {
	return e.parent
}

// Snapshot returns a copy of the bindings owned by this scope.
func (e *Environment) Snapshot() map[string]Value {
	out := make(map[string]Value, len(e.values))
	for k, v := range e.values {
		out[k] = v
	}
	return out
}

// Declare adds a binding to the current scope. It reports false, leaving the
// scope untouched, when the name is already bound here. Shadowing a parent
// binding is allowed.
func (e *Environment) Declare(name string, value Value) bool {
	if _, ok := e.values[name]; ok {
		return false
	}
	e.values[name] = value
	return true
}

// Update rebinds name in the nearest scope that owns it.
func (e *Environment) Update(name string, value Value) bool {
	for scope := e; scope != nil; scope = scope.parent {
		if _, ok := scope.values[name]; ok {
			scope.values[name] = value
			return true
		}
	}
	return false
}

// Lookup retrieves a binding, searching outward through the scope chain.
func (e *Environment) Lookup(name string) (Value, bool) {
	for scope := e; scope != nil; scope = scope.parent {
		if v, ok := scope.values[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Keys returns the names bound in this scope in sorted order.
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Extend opens a child scope.
func (e *Environment) Extend() *Environment {
	return NewEnvironment(e)
}

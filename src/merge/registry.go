package merge

import "fmt"

// Option is a selectable (label, value) pair for a choice list.
type Option struct {
	Label string
	Value string
}

// Registry is an ordered set of enumerated values keyed by their canonical
// string, with a distinguished default returned for unknown identifiers.
// A Registry is immutable after construction and safe for concurrent use.
type Registry[T fmt.Stringer] struct {
	values []T
	index  map[string]T
	def    T
}

// NewRegistry builds a registry from values in declaration order.
// Canonical strings are expected to be unique; if two values collide,
// the first one declared wins.
func NewRegistry[T fmt.Stringer](def T, values ...T) *Registry[T] {
	r := &Registry[T]{
		values: append([]T(nil), values...),
		index:  make(map[string]T, len(values)),
		def:    def,
	}
	for _, v := range values {
		key := v.String()
		if _, ok := r.index[key]; ok {
			continue
		}
		r.index[key] = v
	}
	return r
}

// Resolve returns the value whose canonical string equals id exactly,
// or the registry default when nothing matches. It never fails.
func (r *Registry[T]) Resolve(id string) T {
	if v, ok := r.index[id]; ok {
		return v
	}
	return r.def
}

// Lookup is Resolve with a match report. ok is false when id fell back
// to the default.
func (r *Registry[T]) Lookup(id string) (v T, ok bool) {
	v, ok = r.index[id]
	if !ok {
		return r.def, false
	}
	return v, true
}

// Default returns the fallback value.
func (r *Registry[T]) Default() T {
	return r.def
}

// Values returns the registered values in declaration order.
func (r *Registry[T]) Values() []T {
	return append([]T(nil), r.values...)
}

// Strings returns the canonical strings in declaration order.
func (r *Registry[T]) Strings() []string {
	out := make([]string, len(r.values))
	for i, v := range r.values {
		out[i] = v.String()
	}
	return out
}

// Options returns one choice per value, labelled and valued by its
// canonical string, in declaration order.
func (r *Registry[T]) Options() []Option {
	out := make([]Option, len(r.values))
	for i, v := range r.values {
		s := v.String()
		out[i] = Option{Label: s, Value: s}
	}
	return out
}

// Copyright (c) 2026 JrpcKit and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package jrpc

import "reflect"

// Resources is an immutable, type indexed store of shared values used
// for dependency injection into handlers. It is conceptually two
// layers: a base map built once by a [ResourcesBuilder] (or the router
// builder) and an optional per call overlay checked first.
//
// Copying a Resources value shares the underlying maps, which are
// never mutated after build, so concurrent calls always observe a
// consistent snapshot. Stored values must themselves be safe for
// concurrent use; the store never arbitrates access.
type Resources struct {
	overlay map[reflect.Type]any
	base    map[reflect.Type]any
}

// IsEmpty reports whether neither layer holds any value.
func (r Resources) IsEmpty() bool {
	return len(r.overlay) == 0 && len(r.base) == 0
}

// withOverlay returns a Resources whose base layer is r's base and
// whose overlay layer holds every value of the given store. Lookups
// check the overlay first. A layered store is flattened with its own
// overlay entries winning, so values visible through it stay visible.
func (r Resources) withOverlay(overlay Resources) Resources {
	top := overlay.base
	if len(overlay.overlay) > 0 {
		top = make(map[reflect.Type]any, len(overlay.base)+len(overlay.overlay))
		for t, v := range overlay.base {
			top[t] = v
		}
		for t, v := range overlay.overlay {
			top[t] = v
		}
	}
	return Resources{
		overlay: top,
		base:    r.base,
	}
}

func (r Resources) lookup(t reflect.Type) (any, bool) {
	if v, ok := r.overlay[t]; ok {
		return v, true
	}
	v, ok := r.base[t]
	return v, ok
}

// GetResource returns the stored value of type T, checking the overlay
// layer before the base layer. Absence is reported with false, never
// an error.
func GetResource[T any](r Resources) (T, bool) {
	v, ok := r.lookup(reflect.TypeFor[T]())
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// ResourcesBuilder accumulates values for a [Resources] base layer. The
// zero value is ready to use.
type ResourcesBuilder struct {
	values map[reflect.Type]any
}

// NewResources returns an empty [ResourcesBuilder].
func NewResources() *ResourcesBuilder {
	return &ResourcesBuilder{}
}

// AddResource stores v under the type T. There is one slot per
// distinct type; adding a second value of the same type replaces the
// first.
func AddResource[T any](b *ResourcesBuilder, v T) *ResourcesBuilder {
	b.add(reflect.TypeFor[T](), v)
	return b
}

func (b *ResourcesBuilder) add(t reflect.Type, v any) {
	if b.values == nil {
		b.values = make(map[reflect.Type]any)
	}
	b.values[t] = v
}

// Extend copies every value of other into b, replacing same type
// entries already present in b.
func (b *ResourcesBuilder) Extend(other *ResourcesBuilder) *ResourcesBuilder {
	for t, v := range other.values {
		b.add(t, v)
	}
	return b
}

// Build freezes the accumulated values into an immutable [Resources].
// The builder remains usable; later additions do not affect already
// built stores.
func (b *ResourcesBuilder) Build() Resources {
	if len(b.values) == 0 {
		return Resources{}
	}
	base := make(map[reflect.Type]any, len(b.values))
	for t, v := range b.values {
		base[t] = v
	}
	return Resources{base: base}
}

// ResourceExtractor may be implemented by a resource type to customize
// how it is produced from a [Resources] store, replacing the default
// lookup-by-type behavior. ExtractResource is invoked on the zero
// value and must return a value assignable to the implementing type.
type ResourceExtractor interface {
	ExtractResource(Resources) (any, error)
}

// Optional wraps a resource type to opt into absence tolerant
// extraction: instead of failing the call with
// [ResourceNotFoundError], a missing T yields an Optional with OK set
// to false.
type Optional[T any] struct {
	Value T
	OK    bool
}

// ExtractResource implements the [ResourceExtractor] interface.
func (Optional[T]) ExtractResource(r Resources) (any, error) {
	v, ok := GetResource[T](r)
	return Optional[T]{Value: v, OK: ok}, nil
}

// resourceFrom produces one typed resource argument for a handler
// invocation, honoring [ResourceExtractor] when implemented.
func resourceFrom[T any](r Resources) (T, error) {
	var zero T
	if ex, ok := any(zero).(ResourceExtractor); ok {
		v, err := ex.ExtractResource(r)
		if err != nil {
			return zero, err
		}
		t, ok := v.(T)
		if !ok {
			return zero, ResourceNotFoundError{Type: reflect.TypeFor[T]().String()}
		}
		return t, nil
	}

	v, ok := GetResource[T](r)
	if !ok {
		return zero, ResourceNotFoundError{Type: reflect.TypeFor[T]().String()}
	}
	return v, nil
}

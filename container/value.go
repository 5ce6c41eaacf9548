/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package container

// Value is a tagged variant: either a serialized scalar string or a composite
// group of sub-key → serialized string. The discriminator is structural, so a
// key is always exactly one of the two kinds, never both.
//
// Values are immutable once constructed; the composite map is copied on the
// way in and on the way out so containers can hold Values without defensive
// copying of their own.
type Value struct {
	scalar      string
	composite   map[string]string
	isComposite bool
}

// ScalarValue constructs a scalar Value from a serialized string.
func ScalarValue(s string) Value {
	return Value{scalar: s}
}

// CompositeValue constructs a composite Value from sub-key mappings.
// A nil or empty map yields a legal empty composite, which is distinct from
// a missing key.
func CompositeValue(m map[string]string) Value {
	c := make(map[string]string, len(m))
	for k, v := range m {
		c[k] = v
	}
	return Value{composite: c, isComposite: true}
}

// IsComposite reports whether the value is a composite group.
func (v Value) IsComposite() bool {
	return v.isComposite
}

// Scalar returns the serialized scalar string. It is the zero string for
// composite values.
func (v Value) Scalar() string {
	return v.scalar
}

// Composite returns a copy of the sub-key mappings. It is nil for scalar
// values and an empty map for an empty composite.
func (v Value) Composite() map[string]string {
	if !v.isComposite {
		return nil
	}
	c := make(map[string]string, len(v.composite))
	for k, val := range v.composite {
		c[k] = val
	}
	return c
}

// Sub returns the serialized string for one sub-key of a composite value.
// The boolean reports whether the sub-key was present.
func (v Value) Sub(subKey string) (string, bool) {
	if !v.isComposite {
		return "", false
	}
	s, ok := v.composite[subKey]
	return s, ok
}

// Len returns the number of sub-keys of a composite value, and 0 for scalars.
func (v Value) Len() int {
	return len(v.composite)
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package settings

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/suparena/appdata/container"
)

// errCompositeAsScalar marks a scalar read against a composite entry.
var errCompositeAsScalar = errors.New("key holds a composite group, not a scalar")

// ExistsComposite reports whether key holds a composite containing subKey.
// An absent outer key, or a scalar at the outer key, is simply false —
// absence of an optional container is expected steady-state, not an error.
func (s *Store) ExistsComposite(key, subKey string) (bool, error) {
	v, ok, err := s.container.Get(key)
	if err != nil {
		return false, err
	}
	if !ok || !v.IsComposite() {
		return false, nil
	}
	_, present := v.Sub(subKey)
	return present, nil
}

// ReadComposite returns the value of subKey inside the composite at key,
// decoded as T. It yields def when the outer key is absent, when the outer
// key does not hold a composite, or when the composite lacks subKey; in all
// of those cases the serializer is never consulted. A sub-value that is
// present but cannot be decoded as T yields an error matching
// errors.ErrFormat.
func ReadComposite[T any](s *Store, key, subKey string, def T) (T, error) {
	v, ok, err := s.container.Get(key)
	if err != nil {
		return def, err
	}
	if !ok || !v.IsComposite() {
		return def, nil
	}
	text, present := v.Sub(subKey)
	if !present {
		return def, nil
	}
	return decode[T](s, text)
}

// WriteComposite merges the supplied sub-key values into the composite at
// key. Each supplied sub-key updates an existing sub-key or inserts a new
// one; sub-keys not named in values are left untouched, so a bundle of
// related settings can be partially updated without disturbing siblings.
// If key is absent (or holds a scalar), a new composite is created
// containing exactly the supplied sub-keys.
//
// The merge is read-modify-write at this layer: it is not atomic with
// respect to a concurrent writer of the same composite key, and a race can
// lose an interleaved sibling update. Callers needing stronger guarantees
// must serialize their own writers.
func WriteComposite[T any](s *Store, key string, values map[string]T) error {
	merged := map[string]string{}
	if v, ok, err := s.container.Get(key); err != nil {
		return err
	} else if ok && v.IsComposite() {
		merged = v.Composite()
	}

	for subKey, value := range values {
		text, err := s.serializer.Serialize(value)
		if err != nil {
			return fmt.Errorf("serialize sub-key %q: %w", subKey, err)
		}
		merged[subKey] = text
	}
	return s.container.Set(key, container.CompositeValue(merged))
}

// DeleteComposite removes subKey from the composite at key. The boolean
// reports whether a removal occurred. Removing the last sub-key leaves the
// composite entry itself in place, empty: there is no cascade delete of an
// emptied composite, so Exists(key) stays true until the caller deletes the
// outer key.
func (s *Store) DeleteComposite(key, subKey string) (bool, error) {
	v, ok, err := s.container.Get(key)
	if err != nil {
		return false, err
	}
	if !ok || !v.IsComposite() {
		return false, nil
	}
	sub := v.Composite()
	if _, present := sub[subKey]; !present {
		return false, nil
	}
	delete(sub, subKey)
	if err := s.container.Set(key, container.CompositeValue(sub)); err != nil {
		return false, err
	}
	return true, nil
}

func typeName[T any]() string {
	var zero T
	t := reflect.TypeOf(&zero).Elem()
	return t.String()
}

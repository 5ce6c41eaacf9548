/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package settings

import (
	"github.com/suparena/appdata/container"
	apperrors "github.com/suparena/appdata/errors"
	"github.com/suparena/appdata/serializer"
)

// Store provides typed access to a flat settings namespace. It holds no
// state of its own beyond the bound container and serializer; every
// operation round-trips the container live, so two stores over the same
// container observe each other's writes.
type Store struct {
	container  container.Container
	serializer serializer.ObjectSerializer
}

// New binds a settings store to a container and a serializer.
func New(c container.Container, s serializer.ObjectSerializer) (*Store, error) {
	if c == nil {
		return nil, apperrors.NewArgumentError("container", "must not be nil")
	}
	if s == nil {
		return nil, apperrors.NewArgumentError("serializer", "must not be nil")
	}
	return &Store{container: c, serializer: s}, nil
}

// Serializer returns the serializer this store is bound to.
func (s *Store) Serializer() serializer.ObjectSerializer {
	return s.serializer
}

// Exists reports whether a key is present in the namespace, regardless of
// whether it holds a scalar or a composite.
func (s *Store) Exists(key string) (bool, error) {
	return s.container.ContainsKey(key)
}

// Delete removes a key of either kind. The boolean reports whether a
// removal occurred.
func (s *Store) Delete(key string) (bool, error) {
	return s.container.Remove(key)
}

// Clear removes all top-level keys.
func (s *Store) Clear() error {
	return s.container.Clear()
}

// Keys returns the top-level keys present in the namespace, in no
// particular order.
func (s *Store) Keys() ([]string, error) {
	return s.container.Keys()
}

// Read returns the value stored under key, decoded as T. A key that is
// absent or holds an empty scalar yields def. A stored value that cannot be
// decoded as T yields an error matching errors.ErrFormat — malformed is
// never mapped to def; only absence is. Reading a composite key as a scalar
// is a format error as well.
func Read[T any](s *Store, key string, def T) (T, error) {
	v, ok, err := s.container.Get(key)
	if err != nil {
		return def, err
	}
	if !ok {
		return def, nil
	}
	if v.IsComposite() {
		return def, apperrors.NewFormatError(typeName[T](), errCompositeAsScalar)
	}
	if v.Scalar() == "" {
		return def, nil
	}
	return decode[T](s, v.Scalar())
}

// TryRead is Read with absence signalled explicitly instead of through a
// caller-supplied default. It agrees with Exists and Read on presence: the
// cases where Read would fall back to def report false here.
func TryRead[T any](s *Store, key string) (T, bool, error) {
	var zero T
	v, ok, err := s.container.Get(key)
	if err != nil {
		return zero, false, err
	}
	if !ok {
		return zero, false, nil
	}
	if v.IsComposite() {
		return zero, false, apperrors.NewFormatError(typeName[T](), errCompositeAsScalar)
	}
	if v.Scalar() == "" {
		return zero, false, nil
	}
	decoded, err := decode[T](s, v.Scalar())
	if err != nil {
		return zero, false, err
	}
	return decoded, true, nil
}

// Write serializes value and stores it under key unconditionally,
// overwriting any prior scalar or composite at that key.
func Write[T any](s *Store, key string, value T) error {
	text, err := s.serializer.Serialize(value)
	if err != nil {
		return err
	}
	return s.container.Set(key, container.ScalarValue(text))
}

func decode[T any](s *Store, text string) (T, error) {
	var out T
	if err := s.serializer.Deserialize(text, &out); err != nil {
		return out, err
	}
	return out, nil
}

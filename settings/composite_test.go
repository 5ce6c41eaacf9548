/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package settings

import (
	"fmt"
	"testing"

	"github.com/suparena/appdata/container"
	"github.com/suparena/appdata/container/memory"
	apperrors "github.com/suparena/appdata/errors"
	"github.com/suparena/appdata/serializer"
)

func TestCompositeMerge(t *testing.T) {
	s := newTestStore(t)

	if err := WriteComposite(s, "window", map[string]int{"w": 800}); err != nil {
		t.Fatalf("First WriteComposite failed: %v", err)
	}
	if err := WriteComposite(s, "window", map[string]int{"h": 600}); err != nil {
		t.Fatalf("Second WriteComposite failed: %v", err)
	}

	// Sibling w must not be disturbed by the second write.
	w, err := ReadComposite(s, "window", "w", 0)
	if err != nil || w != 800 {
		t.Fatalf("Sibling lost by merge: w=%d err=%v", w, err)
	}
	h, err := ReadComposite(s, "window", "h", 0)
	if err != nil || h != 600 {
		t.Fatalf("Merged sub-key missing: h=%d err=%v", h, err)
	}
}

func TestCompositeMergeUpdatesExistingSubKey(t *testing.T) {
	s := newTestStore(t)

	WriteComposite(s, "window", map[string]int{"w": 800, "h": 600})
	WriteComposite(s, "window", map[string]int{"w": 1024})

	w, _ := ReadComposite(s, "window", "w", 0)
	h, _ := ReadComposite(s, "window", "h", 0)
	if w != 1024 || h != 600 {
		t.Fatalf("Expected w=1024 h=600 after partial update, got w=%d h=%d", w, h)
	}
}

func TestCompositeAbsenceShortCircuits(t *testing.T) {
	c := memory.New()
	s, _ := New(c, poisonSerializer{})

	// Outer key absent: serializer must not be touched.
	v, err := ReadComposite(s, "missing", "a", 7)
	if err != nil || v != 7 {
		t.Fatalf("Absent outer key: v=%d err=%v; want 7, nil", v, err)
	}

	// Outer present, sub-key absent: still short-circuits.
	c.Set("group", container.CompositeValue(map[string]string{"b": "1"}))
	v, err = ReadComposite(s, "group", "a", 7)
	if err != nil || v != 7 {
		t.Fatalf("Absent sub-key: v=%d err=%v; want 7, nil", v, err)
	}
}

func TestCompositeMalformedSubValue(t *testing.T) {
	c := memory.New()
	s, _ := New(c, serializer.NewJSONSerializer())

	c.Set("group", container.CompositeValue(map[string]string{"a": "not-json"}))

	_, err := ReadComposite(s, "group", "a", 0)
	if !apperrors.IsFormat(err) {
		t.Fatalf("Malformed sub-value: expected ErrFormat, got %v", err)
	}
}

func TestCompositeOverScalarYieldsDefault(t *testing.T) {
	s := newTestStore(t)

	Write(s, "k", "plain")

	v, err := ReadComposite(s, "k", "a", 3)
	if err != nil || v != 3 {
		t.Fatalf("Scalar at outer key: v=%d err=%v; want 3, nil", v, err)
	}
	ok, err := s.ExistsComposite("k", "a")
	if err != nil || ok {
		t.Fatalf("ExistsComposite over scalar = %v, %v; want false, nil", ok, err)
	}
}

func TestCompositePartialDelete(t *testing.T) {
	s := newTestStore(t)

	WriteComposite(s, "group", map[string]int{"a": 1, "b": 2})

	removed, err := s.DeleteComposite("group", "a")
	if err != nil || !removed {
		t.Fatalf("DeleteComposite: removed=%v err=%v", removed, err)
	}

	if ok, _ := s.ExistsComposite("group", "a"); ok {
		t.Error("Sub-key a still present after delete")
	}
	if ok, _ := s.ExistsComposite("group", "b"); !ok {
		t.Error("Sibling b lost by partial delete")
	}
	if ok, _ := s.Exists("group"); !ok {
		t.Error("Outer composite must survive partial delete")
	}

	b, err := ReadComposite(s, "group", "b", 0)
	if err != nil || b != 2 {
		t.Fatalf("Sibling value corrupted: b=%d err=%v", b, err)
	}
}

func TestEmptiedCompositeRemains(t *testing.T) {
	s := newTestStore(t)

	WriteComposite(s, "group", map[string]int{"only": 1})

	removed, err := s.DeleteComposite("group", "only")
	if err != nil || !removed {
		t.Fatalf("DeleteComposite: removed=%v err=%v", removed, err)
	}

	// No cascade delete: the empty composite entry itself stays.
	if ok, _ := s.Exists("group"); !ok {
		t.Fatal("Emptied composite entry must remain present")
	}
	if ok, _ := s.ExistsComposite("group", "only"); ok {
		t.Fatal("Deleted sub-key must be gone")
	}
}

func TestDeleteCompositeMissingCases(t *testing.T) {
	s := newTestStore(t)

	// Absent outer key.
	removed, err := s.DeleteComposite("missing", "a")
	if err != nil || removed {
		t.Fatalf("Absent outer: removed=%v err=%v; want false, nil", removed, err)
	}

	// Present composite, absent sub-key.
	WriteComposite(s, "group", map[string]int{"b": 1})
	removed, err = s.DeleteComposite("group", "a")
	if err != nil || removed {
		t.Fatalf("Absent sub-key: removed=%v err=%v; want false, nil", removed, err)
	}

	// Scalar at outer key.
	Write(s, "plain", 1)
	removed, err = s.DeleteComposite("plain", "a")
	if err != nil || removed {
		t.Fatalf("Scalar outer: removed=%v err=%v; want false, nil", removed, err)
	}
}

func TestWriteCompositeOverScalarReplaces(t *testing.T) {
	s := newTestStore(t)

	Write(s, "k", "plain")
	if err := WriteComposite(s, "k", map[string]int{"a": 1}); err != nil {
		t.Fatalf("WriteComposite over scalar failed: %v", err)
	}

	v, err := ReadComposite(s, "k", "a", 0)
	if err != nil || v != 1 {
		t.Fatalf("Composite did not replace scalar: v=%d err=%v", v, err)
	}
}

func TestEmptyCompositeDistinctFromMissing(t *testing.T) {
	c := memory.New()
	s, _ := New(c, serializer.NewJSONSerializer())

	c.Set("empty", container.CompositeValue(nil))

	if ok, _ := s.Exists("empty"); !ok {
		t.Error("Empty composite key must exist")
	}
	if ok, _ := s.Exists("missing"); ok {
		t.Error("Missing key must not exist")
	}
	if ok, _ := s.ExistsComposite("empty", "a"); ok {
		t.Error("Empty composite has no sub-keys")
	}
}

// poisonSerializer fails every call; used to prove short-circuit paths
// never touch the serializer.
type poisonSerializer struct{}

func (poisonSerializer) Serialize(any) (string, error) {
	return "", fmt.Errorf("serializer must not be called")
}

func (poisonSerializer) Deserialize(string, any) error {
	return fmt.Errorf("serializer must not be called")
}

/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package container

import (
	"testing"
)

func TestScalarValue(t *testing.T) {
	v := ScalarValue(`"dark"`)

	if v.IsComposite() {
		t.Error("Scalar value must not report composite")
	}
	if v.Scalar() != `"dark"` {
		t.Errorf("Expected scalar %q, got %q", `"dark"`, v.Scalar())
	}
	if v.Composite() != nil {
		t.Error("Scalar value must have nil composite map")
	}
	if _, ok := v.Sub("anything"); ok {
		t.Error("Scalar value must not resolve sub-keys")
	}
}

func TestCompositeValue(t *testing.T) {
	v := CompositeValue(map[string]string{"a": "1", "b": "2"})

	if !v.IsComposite() {
		t.Error("Composite value must report composite")
	}
	if v.Len() != 2 {
		t.Errorf("Expected 2 sub-keys, got %d", v.Len())
	}
	if s, ok := v.Sub("a"); !ok || s != "1" {
		t.Errorf("Expected sub-key a=1, got %q (present=%v)", s, ok)
	}
	if _, ok := v.Sub("c"); ok {
		t.Error("Missing sub-key must not be present")
	}
}

func TestEmptyCompositeIsLegal(t *testing.T) {
	v := CompositeValue(nil)

	if !v.IsComposite() {
		t.Error("Empty composite must still report composite")
	}
	if v.Len() != 0 {
		t.Errorf("Expected 0 sub-keys, got %d", v.Len())
	}
	if v.Composite() == nil {
		t.Error("Empty composite must return a non-nil empty map")
	}
}

func TestCompositeValueIsDetachedFromInput(t *testing.T) {
	src := map[string]string{"a": "1"}
	v := CompositeValue(src)

	src["a"] = "mutated"
	src["b"] = "2"

	if s, _ := v.Sub("a"); s != "1" {
		t.Errorf("Value must not alias the input map, got a=%q", s)
	}
	if v.Len() != 1 {
		t.Errorf("Value must not grow with the input map, got %d sub-keys", v.Len())
	}

	out := v.Composite()
	out["c"] = "3"
	if v.Len() != 1 {
		t.Error("Mutating the returned map must not affect the value")
	}
}

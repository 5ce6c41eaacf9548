/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package memory

import (
	"sort"
	"testing"

	"github.com/suparena/appdata/container"
)

func TestSetGetRemove(t *testing.T) {
	c := New()

	if err := c.Set("theme", container.ScalarValue(`"dark"`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	v, ok, err := c.Get("theme")
	if err != nil || !ok {
		t.Fatalf("Get failed: present=%v err=%v", ok, err)
	}
	if v.Scalar() != `"dark"` {
		t.Errorf("Expected %q, got %q", `"dark"`, v.Scalar())
	}

	removed, err := c.Remove("theme")
	if err != nil || !removed {
		t.Fatalf("Remove failed: removed=%v err=%v", removed, err)
	}

	if _, ok, _ := c.Get("theme"); ok {
		t.Error("Key still present after Remove")
	}

	removed, err = c.Remove("theme")
	if err != nil {
		t.Fatalf("Remove of missing key errored: %v", err)
	}
	if removed {
		t.Error("Remove of missing key must report false")
	}
}

func TestContainsKeyBothKinds(t *testing.T) {
	c := New()

	c.Set("scalar", container.ScalarValue("1"))
	c.Set("group", container.CompositeValue(map[string]string{"a": "1"}))

	for _, key := range []string{"scalar", "group"} {
		ok, err := c.ContainsKey(key)
		if err != nil || !ok {
			t.Errorf("ContainsKey(%q) = %v, %v; want true, nil", key, ok, err)
		}
	}

	if ok, _ := c.ContainsKey("missing"); ok {
		t.Error("ContainsKey must report false for a key never written")
	}
}

func TestKeysAndClear(t *testing.T) {
	c := New()

	c.Set("a", container.ScalarValue("1"))
	c.Set("b", container.ScalarValue("2"))
	c.Set("c", container.CompositeValue(nil))

	keys, err := c.Keys()
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	sort.Strings(keys)
	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Fatalf("Expected [a b c], got %v", keys)
	}

	if err := c.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	for _, key := range []string{"a", "b", "c"} {
		if ok, _ := c.ContainsKey(key); ok {
			t.Errorf("Key %q still present after Clear", key)
		}
	}
}

func TestSetOverwritesAcrossKinds(t *testing.T) {
	c := New()

	c.Set("k", container.ScalarValue("1"))
	c.Set("k", container.CompositeValue(map[string]string{"a": "1"}))

	v, ok, _ := c.Get("k")
	if !ok || !v.IsComposite() {
		t.Fatal("Composite write must replace scalar entry")
	}

	c.Set("k", container.ScalarValue("2"))
	v, _, _ = c.Get("k")
	if v.IsComposite() {
		t.Fatal("Scalar write must replace composite entry")
	}
}

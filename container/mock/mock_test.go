/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mock

import (
	"fmt"
	"testing"

	"github.com/suparena/appdata/container"
)

func TestBasicOperations(t *testing.T) {
	m := New()

	if err := m.Set("k", container.ScalarValue("1")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v, ok, err := m.Get("k")
	if err != nil || !ok || v.Scalar() != "1" {
		t.Fatalf("Get = %+v, %v, %v", v, ok, err)
	}
	if m.Len() != 1 {
		t.Fatalf("Expected 1 entry, got %d", m.Len())
	}
}

func TestErrorInjection(t *testing.T) {
	boom := fmt.Errorf("substrate down")
	m := New().
		Seed("k", container.ScalarValue("1")).
		WithGetError(boom).
		WithSetError(boom).
		WithRemoveError(boom).
		WithClearError(boom)

	if _, _, err := m.Get("k"); err != boom {
		t.Errorf("Get: expected injected error, got %v", err)
	}
	if _, err := m.ContainsKey("k"); err != boom {
		t.Errorf("ContainsKey: expected injected error, got %v", err)
	}
	if err := m.Set("k", container.ScalarValue("2")); err != boom {
		t.Errorf("Set: expected injected error, got %v", err)
	}
	if _, err := m.Remove("k"); err != boom {
		t.Errorf("Remove: expected injected error, got %v", err)
	}
	if err := m.Clear(); err != boom {
		t.Errorf("Clear: expected injected error, got %v", err)
	}
	if _, err := m.Keys(); err != boom {
		t.Errorf("Keys: expected injected error, got %v", err)
	}
}

func TestSeedBypassesInjection(t *testing.T) {
	m := New().WithSetError(fmt.Errorf("no writes"))
	m.Seed("k", container.ScalarValue("1"))
	if m.Len() != 1 {
		t.Fatal("Seed must populate despite injected Set error")
	}
}

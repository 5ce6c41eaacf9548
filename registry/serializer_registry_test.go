/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"testing"
)

func TestBuiltinSerializers(t *testing.T) {
	for _, name := range []string{"json", "yaml", "gob"} {
		s, err := GetSerializer(name)
		if err != nil {
			t.Fatalf("GetSerializer(%q) failed: %v", name, err)
		}
		if s == nil {
			t.Fatalf("GetSerializer(%q) returned nil serializer", name)
		}
	}
}

func TestUnknownSerializer(t *testing.T) {
	_, err := GetSerializer("protobuf")
	if err == nil {
		t.Fatal("Expected error for unregistered serializer name")
	}
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	if len(names) < 3 {
		t.Fatalf("Expected at least the built-in serializers, got %v", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Names not sorted: %v", names)
		}
	}
}

func TestDuplicateRegistrationPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Expected panic on duplicate registration")
		}
	}()
	RegisterSerializer("json", nil)
}

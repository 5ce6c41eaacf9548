/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/suparena/appdata/serializer"
)

// SerializerFactory creates a fresh ObjectSerializer instance.
type SerializerFactory func() serializer.ObjectSerializer

var (
	mu                 sync.RWMutex
	serializerRegistry = make(map[string]SerializerFactory)
)

// RegisterSerializer registers a serializer factory under the given name.
// If a factory is already registered for the name, it panics to prevent
// accidental overrides.
func RegisterSerializer(name string, factory SerializerFactory) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := serializerRegistry[name]; exists {
		panic(fmt.Sprintf("serializer registry: serializer %q already registered", name))
	}
	serializerRegistry[name] = factory
}

// GetSerializer returns a new serializer instance for the given name.
// If no factory is registered, it returns an error.
func GetSerializer(name string) (serializer.ObjectSerializer, error) {
	mu.RLock()
	defer mu.RUnlock()
	factory, ok := serializerRegistry[name]
	if !ok {
		return nil, fmt.Errorf("serializer registry: no serializer registered for name %q", name)
	}
	return factory(), nil
}

// Names returns the registered serializer names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(serializerRegistry))
	for name := range serializerRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterSerializer("json", serializer.NewJSONSerializer)
	RegisterSerializer("yaml", serializer.NewYAMLSerializer)
	RegisterSerializer("gob", serializer.NewGobSerializer)
}

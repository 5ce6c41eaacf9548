/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package serializer

import (
	"encoding/json"
	"fmt"

	"github.com/suparena/appdata/errors"
)

// NewJSONSerializer creates a new serializer using json encoding.
// This is the default serializer used when a helper is constructed without
// an explicit one.
func NewJSONSerializer() ObjectSerializer {
	return &jsonSerializer{}
}

// jsonSerializer implements the ObjectSerializer interface using json encoding
type jsonSerializer struct {
}

func (s *jsonSerializer) Serialize(value any) (string, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("json serialize: %w", err)
	}
	return string(b), nil
}

func (s *jsonSerializer) Deserialize(data string, out any) error {
	if err := json.Unmarshal([]byte(data), out); err != nil {
		return errors.NewFormatError(fmt.Sprintf("%T", out), err)
	}
	return nil
}

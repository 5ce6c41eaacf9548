/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package serializer

import (
	"fmt"

	"github.com/suparena/appdata/errors"
	"gopkg.in/yaml.v3"
)

// NewYAMLSerializer creates a new serializer using yaml encoding. The output
// is human-editable, which suits settings files that users may inspect.
func NewYAMLSerializer() ObjectSerializer {
	return &yamlSerializer{}
}

// yamlSerializer implements the ObjectSerializer interface using yaml encoding
type yamlSerializer struct {
}

func (s *yamlSerializer) Serialize(value any) (string, error) {
	b, err := yaml.Marshal(value)
	if err != nil {
		return "", fmt.Errorf("yaml serialize: %w", err)
	}
	return string(b), nil
}

func (s *yamlSerializer) Deserialize(data string, out any) error {
	if err := yaml.Unmarshal([]byte(data), out); err != nil {
		return errors.NewFormatError(fmt.Sprintf("%T", out), err)
	}
	return nil
}

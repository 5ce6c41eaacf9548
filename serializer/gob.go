/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package serializer

import (
	"bytes"
	"encoding/base64"
	"encoding/gob"
	"fmt"

	"github.com/suparena/appdata/errors"
)

// NewGobSerializer creates a new serializer using Go's gob encoding, base64
// armored so the result is still a valid storage string. Gob keeps full
// fidelity for Go types (e.g. distinguishes int from float64) but the stored
// form is opaque and only readable from Go.
func NewGobSerializer() ObjectSerializer {
	return &gobSerializer{}
}

// gobSerializer implements the ObjectSerializer interface using gob encoding
type gobSerializer struct {
}

func (s *gobSerializer) Serialize(value any) (string, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(value); err != nil {
		return "", fmt.Errorf("gob serialize: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (s *gobSerializer) Deserialize(data string, out any) error {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return errors.NewFormatError(fmt.Sprintf("%T", out), err)
	}
	dec := gob.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(out); err != nil {
		return errors.NewFormatError(fmt.Sprintf("%T", out), err)
	}
	return nil
}

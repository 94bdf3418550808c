package schemafield

import (
	"bytes"
	"encoding/json"
)

// Column is the binding to the underlying JSON column type. The column owns
// serialization of stored values and its own encoder configuration; the field
// borrows it so that schema documents given as JSON text are decoded with the
// same settings as stored data.
type Column interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

// jsonColumn is the default Column, backed by encoding/json. It stands in for
// hosts that do not supply their own codec.
type jsonColumn struct{}

func (jsonColumn) Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (jsonColumn) Decode(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	return dec.Decode(v)
}

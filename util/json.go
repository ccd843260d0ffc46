package util

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// ReadJSONInto reads all of r, closes it, and decodes the JSON into data.
// Numbers are kept as json.Number so that large identifiers are not rounded
// through float64.
func ReadJSONInto(r io.ReadCloser, data interface{}) error {
	defer r.Close()
	raw, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "reading JSON")
	}
	return decodeJSON(raw, data)
}

// DecodeJSONObject decodes a JSON document whose top level must be an object.
func DecodeJSONObject(raw []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := decodeJSON(raw, &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, errors.New("JSON document is not an object")
	}
	return out, nil
}

func decodeJSON(raw []byte, data interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(data); err != nil {
		return errors.Wrap(err, "decoding JSON")
	}
	if dec.More() {
		return errors.New("unexpected data after JSON document")
	}
	return nil
}

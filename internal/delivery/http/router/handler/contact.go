package handler

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

// contactValue binds a contact given either as a JSON string or a JSON number.
// Numbers keep their literal digits.
type contactValue string

func (v *contactValue) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return errors.WithStack(err)
	}

	switch val := raw.(type) {
	case nil:
		*v = ""
	case string:
		*v = contactValue(val)
	case json.Number:
		*v = contactValue(val.String())
	default:
		return errors.Errorf("contact must be a string or a number, got %s", data)
	}

	return nil
}

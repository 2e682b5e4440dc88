package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

const maxJSONBody = 1 << 20

func readJSON(body io.Reader, dest any) error {
	decoder := json.NewDecoder(body)
	return decoder.Decode(dest)
}

// readMaybeEncodedJSON decodes body into dest. The body may be the JSON
// object itself or a JSON string holding it.
func readMaybeEncodedJSON(body io.Reader, dest any) error {
	raw, err := io.ReadAll(io.LimitReader(body, maxJSONBody))
	if err != nil {
		return err
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return errors.New("empty body")
	}
	if raw[0] == '"' {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return err
		}
		raw = []byte(inner)
	}
	return readJSON(bytes.NewReader(raw), dest)
}

// flexString accepts a JSON string or number and keeps its text.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

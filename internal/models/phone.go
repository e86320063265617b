package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Phone accepts both JSON numbers and strings; the backend stores phones as numbers.
type Phone string

func (p *Phone) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*p = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = Phone(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("phone: %w", err)
	}
	*p = Phone(n.String())
	return nil
}

func (p Phone) String() string {
	return string(p)
}

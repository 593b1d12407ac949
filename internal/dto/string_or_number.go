package dto

import (
	"bytes"
	"encoding/json"
)

// StringOrNumber is a string field that also accepts a bare JSON number,
// kept verbatim. Clients send phone numbers and years both ways.
type StringOrNumber string

func (s *StringOrNumber) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*s = StringOrNumber(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = StringOrNumber(num.String())
	return nil
}

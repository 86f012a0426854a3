package header

import (
	"encoding/json"

	"braces.dev/errtrace"
)

type headerData struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// MarshalJSON encodes headers as a list of name and raw value pairs.
func (hs Headers) MarshalJSON() ([]byte, error) {
	data := make([]headerData, 0, len(hs))
	for _, h := range hs {
		data = append(data, headerData{Name: string(h.Name()), Value: h.Value()})
	}
	return errtrace.Wrap2(json.Marshal(data))
}

// UnmarshalJSON decodes headers written by [Headers.MarshalJSON].
func (hs *Headers) UnmarshalJSON(b []byte) error {
	var data []headerData
	if err := json.Unmarshal(b, &data); err != nil {
		return errtrace.Wrap(err)
	}
	if data == nil {
		*hs = nil
		return nil
	}
	hs2 := make(Headers, 0, len(data))
	for _, d := range data {
		hs2 = append(hs2, New(d.Name, d.Value))
	}
	*hs = hs2
	return nil
}

package oas

import "encoding/json"

// MarshalJSON flattens the status-code map into the responses object,
// mirroring the inline YAML representation.
func (r *Responses) MarshalJSON() ([]byte, error) {
	if r == nil || r.Codes == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(r.Codes)
}

// UnmarshalJSON implements json.Unmarshaler for Responses.
func (r *Responses) UnmarshalJSON(data []byte) error {
	codes := make(map[string]*Response)
	if err := json.Unmarshal(data, &codes); err != nil {
		return err
	}
	r.Codes = codes
	return nil
}

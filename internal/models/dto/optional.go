package dto

import "encoding/json"

// OptionalNumber distinguishes three JSON states for a numeric field: key
// absent (Present=false), key present with null (Present=true, Valid=false),
// and key present with a number (Present=true, Valid=true). encoding/json only
// invokes UnmarshalJSON for keys that appear in the payload, so an untouched
// zero value means "absent".
type OptionalNumber struct {
	Present bool
	Valid   bool
	Value   float64
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *OptionalNumber) UnmarshalJSON(data []byte) error {
	o.Present = true
	if string(data) == "null" {
		o.Valid = false
		o.Value = 0
		return nil
	}
	if err := json.Unmarshal(data, &o.Value); err != nil {
		return err
	}
	o.Valid = true
	return nil
}

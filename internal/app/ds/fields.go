package ds

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Float is a JSON field that accepts either a number or a numeric string
// ("150.5"). Unmarshalling never fails; the outcome is tagged instead, so
// each endpoint can report an absent key and a malformed value with its own
// message.
type Float struct {
	defined bool
	valid   bool
	value   float64
}

// FloatValue builds a valid Float, mainly for tests and CLI payloads.
func FloatValue(v float64) Float {
	return Float{defined: true, valid: true, value: v}
}

func (f *Float) UnmarshalJSON(data []byte) error {
	f.defined = true
	f.valid = false

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		f.valid = true
		f.value = num
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		num, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
		if err == nil {
			f.valid = true
			f.value = num
		}
		return nil
	}

	// null, bool, object, array: present but not a number
	return nil
}

func (f Float) MarshalJSON() ([]byte, error) {
	if !f.valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// Defined reports whether the key was present in the request at all.
func (f Float) Defined() bool {
	return f.defined
}

// Valid reports whether the key was present and carried a usable number.
func (f Float) Valid() bool {
	return f.valid
}

func (f Float) Value() float64 {
	return f.value
}

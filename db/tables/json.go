package tables

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is an ordered list of strings that may be stored in a persistent store
type StringList []string

// Value returns the lists database value
func (s StringList) Value() (driver.Value, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return driver.Value(""), err
	}
	return driver.Value(string(data)), nil
}

// Scan allows to scan a string list
func (s *StringList) Scan(src interface{}) error {
	var source []byte
	switch v := src.(type) {
	case string:
		source = []byte(v)
	case []byte:
		source = v
	default:
		if v != nil {
			return fmt.Errorf("error scanning json value: %+v", src)
		}
		source = []byte("[]")
	}
	if len(source) == 0 {
		source = []byte("[]")
	}
	return json.Unmarshal(source, s)
}

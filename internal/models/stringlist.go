package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// StringList stores an ordered list of strings as a JSON column.
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("unsupported type for StringList")
	}
	return json.Unmarshal(bytes, l)
}

package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// IDList is a set of user IDs stored as a jsonb array. Used for the vote
// sets on comments, where the whole set is read and written in one row access.
type IDList []uint

func (l IDList) Value() (driver.Value, error) {
	if l == nil {
		l = IDList{}
	}
	return json.Marshal(l)
}

func (l *IDList) Scan(value interface{}) error {
	if value == nil {
		*l = IDList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("cannot scan %T into IDList", value)
}

// Contains reports whether id is in the list.
func (l IDList) Contains(id uint) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// Without returns a copy of the list with id removed.
func (l IDList) Without(id uint) IDList {
	out := make(IDList, 0, len(l))
	for _, v := range l {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// StringList is a list of record uids stored as a jsonb array, used for the
// per-user following set.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("unsupported type for StringList")
}

// Contains reports whether s is in the list.
func (l StringList) Contains(s string) bool {
	for _, v := range l {
		if v == s {
			return true
		}
	}
	return false
}

// With returns a copy of the list with s added. Adding a value already
// present is a no-op, so the list never holds duplicates.
func (l StringList) With(s string) StringList {
	out := make(StringList, 0, len(l)+1)
	out = append(out, l...)
	if l.Contains(s) {
		return out
	}
	return append(out, s)
}

// Without returns a copy of the list with s removed.
func (l StringList) Without(s string) StringList {
	out := make(StringList, 0, len(l))
	for _, v := range l {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}

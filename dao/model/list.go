// List column types. Multi-value attributes (technologies, features,
// achievements, highlights) live in plain text columns holding a JSON array,
// the convention the original Prisma schema used. The types below are the
// single serialization boundary for that convention: encoding happens in
// Value, decoding in Scan, and nothing else in the codebase touches the raw
// column text.
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedField reports stored list text that is not valid JSON.
var ErrMalformedField = errors.New("malformed list field")

// StringList is an ordered list of strings stored as a JSON text column.
// Scanning malformed text fails the whole query (strict policy).
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return encodeList([]string(l))
}

func (l *StringList) Scan(src any) error {
	return decodeList(src, (*[]string)(l))
}

func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// LenientStringList decodes like StringList but substitutes the empty list
// for malformed text instead of failing the read. Used for skill
// technologies so one corrupt row can never blank the public skills section.
type LenientStringList []string

func (l LenientStringList) Value() (driver.Value, error) {
	return encodeList([]string(l))
}

func (l *LenientStringList) Scan(src any) error {
	if err := decodeList(src, (*[]string)(l)); err != nil {
		*l = LenientStringList{}
	}
	return nil
}

func (l LenientStringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Achievement is one structured record inside an experience entry.
type Achievement struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      string `json:"impact"`
}

// AchievementList is an ordered list of achievements stored as a JSON text
// column. Strict policy, like StringList.
type AchievementList []Achievement

func (l AchievementList) Value() (driver.Value, error) {
	return encodeList([]Achievement(l))
}

func (l *AchievementList) Scan(src any) error {
	return decodeList(src, (*[]Achievement)(l))
}

func (l AchievementList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Achievement(l))
}

// encodeList serializes to canonical JSON. A nil list encodes to "[]", never
// to NULL, so a written row is always distinguishable from one never written.
func encodeList[T any](items []T) (driver.Value, error) {
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// decodeList parses stored column text. NULL (never written) yields the
// empty list; malformed text yields ErrMalformedField.
func decodeList[T any](src any, out *[]T) error {
	if src == nil {
		*out = []T{}
		return nil
	}
	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("%w: unexpected column type %T", ErrMalformedField, src)
	}
	if len(data) == 0 {
		*out = []T{}
		return nil
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedField, err)
	}
	if items == nil {
		items = []T{}
	}
	*out = items
	return nil
}

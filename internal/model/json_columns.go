package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a []string stored as a JSON array column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	return marshalColumn(l)
}

func (l *StringList) Scan(src any) error {
	return scanColumn(src, l)
}

// StringMap is a map[string]string stored as a JSON object column.
type StringMap map[string]string

func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	return marshalColumn(m)
}

func (m *StringMap) Scan(src any) error {
	return scanColumn(src, m)
}

// ScoreMap maps a life category to its 0-10 score.
type ScoreMap map[string]int

func (m ScoreMap) Value() (driver.Value, error) {
	if m == nil {
		return "{}", nil
	}
	return marshalColumn(m)
}

func (m *ScoreMap) Scan(src any) error {
	return scanColumn(src, m)
}

// Answers is the raw questionnaire answer map (question id -> string, number or string array).
type Answers map[string]any

func (a Answers) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	return marshalColumn(a)
}

func (a *Answers) Scan(src any) error {
	return scanColumn(src, a)
}

func marshalColumn(v any) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func scanColumn(src any, dst any) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported column type %T", src)
	}

	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, dst)
}

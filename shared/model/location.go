package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

var errUnsupportedJSONSource = errors.New("unsupported source type for jsonb column")

// Location is stored as a JSONB document.
type Location struct {
	Address string `json:"address,omitempty"`
	City    string `json:"city,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
}

func (l Location) Value() (driver.Value, error) {
	payload, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal location: %w", err)
	}

	return payload, nil
}

func (l *Location) Scan(src any) error {
	return ScanJSON(src, l)
}

// ScanJSON decodes a JSONB column value into dest. NULL leaves dest untouched.
func ScanJSON(src any, dest any) error {
	var payload []byte

	switch value := src.(type) {
	case nil:
		return nil
	case []byte:
		payload = value
	case string:
		payload = []byte(value)
	default:
		return fmt.Errorf("%w: %T", errUnsupportedJSONSource, src)
	}

	if len(payload) == 0 {
		return nil
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return fmt.Errorf("failed to unmarshal jsonb column: %w", err)
	}

	return nil
}

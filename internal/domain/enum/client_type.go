package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ClientType distinguishes company clients from private individuals
type ClientType string

const (
	ClientTypeEntreprise  ClientType = "entreprise"
	ClientTypeParticulier ClientType = "particulier"
)

func (t ClientType) String() string {
	return string(t)
}

// IsValid reports whether the value is one of the known client types
func (t ClientType) IsValid() bool {
	return t == ClientTypeEntreprise || t == ClientTypeParticulier
}

func (t ClientType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *ClientType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*t = ClientType(str)
	return nil
}

func (t ClientType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *ClientType) Scan(value interface{}) error {
	if value == nil {
		*t = ClientTypeEntreprise
		return nil
	}
	switch v := value.(type) {
	case string:
		*t = ClientType(v)
	case []byte:
		*t = ClientType(string(v))
	}
	return nil
}

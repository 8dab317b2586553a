package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// SiteStatus represents the lifecycle state of a work site
type SiteStatus string

const (
	SiteStatusActif   SiteStatus = "actif"
	SiteStatusTermine SiteStatus = "terminé"
)

func (s SiteStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is one of the known site statuses
func (s SiteStatus) IsValid() bool {
	return s == SiteStatusActif || s == SiteStatusTermine
}

func (s SiteStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *SiteStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*s = SiteStatus(str)
	return nil
}

func (s SiteStatus) Value() (driver.Value, error) {
	return string(s), nil
}

func (s *SiteStatus) Scan(value interface{}) error {
	if value == nil {
		*s = SiteStatusActif
		return nil
	}
	switch v := value.(type) {
	case string:
		*s = SiteStatus(v)
	case []byte:
		*s = SiteStatus(string(v))
	}
	return nil
}

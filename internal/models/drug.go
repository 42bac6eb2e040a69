package models

import (
	"time"

	"gorm.io/datatypes"
)

// Drug is one cached openFDA label entry. Only the primary value of each
// multi-valued upstream field is kept.
type Drug struct {
	ID           string         `gorm:"column:drug_id;primaryKey;size:191" json:"id"`
	BrandName    string         `gorm:"size:512;index:idx_drugs_brand_name" json:"brand_name,omitempty"`
	GenericName  string         `gorm:"size:512;index:idx_drugs_generic_name" json:"generic_name,omitempty"`
	Manufacturer string         `gorm:"size:512" json:"manufacturer,omitempty"`
	Indications  string         `gorm:"type:text" json:"indications,omitempty"`
	FetchedAt    time.Time      `gorm:"column:last_fetched;not null;index:idx_drugs_last_fetched" json:"fetched_at"`
	Raw          datatypes.JSON `json:"-"`
}

func (Drug) TableName() string {
	return "drugs_cache"
}

// Nameless reports whether both name fields are empty.
func (d *Drug) Nameless() bool {
	return d.BrandName == "" && d.GenericName == ""
}

// PrimaryName is the brand name, falling back to the generic name.
func (d *Drug) PrimaryName() string {
	if d.BrandName != "" {
		return d.BrandName
	}
	return d.GenericName
}

// FreshAt reports whether the record is still valid at now for the given TTL.
func (d *Drug) FreshAt(now time.Time, ttl time.Duration) bool {
	return now.Sub(d.FetchedAt) < ttl
}

package models

import (
	"strings"
	"time"
)

type WatchListEntry struct {
	ID             int        `json:"id"`
	LicensePlate   string     `json:"licensePlate" validate:"required"`
	Reason         string     `json:"reason" validate:"required"`
	Description    *string    `json:"description"`
	Severity       string     `json:"severity" validate:"required|in:low,medium,high,critical"`
	AddedBy        string     `json:"addedBy" validate:"required"`
	IsActive       bool       `json:"isActive"`
	VehicleDetails *string    `json:"vehicleDetails"`
	CaseNumber     *string    `json:"caseNumber"`
	ContactInfo    *string    `json:"contactInfo"`
	ExpiresAt      *time.Time `json:"expiresAt"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type WatchListEntryInput struct {
	LicensePlate   string     `json:"licensePlate"`
	Reason         string     `json:"reason"`
	Description    *string    `json:"description"`
	Severity       string     `json:"severity"`
	AddedBy        string     `json:"addedBy"`
	IsActive       *bool      `json:"isActive"`
	VehicleDetails *string    `json:"vehicleDetails"`
	CaseNumber     *string    `json:"caseNumber"`
	ContactInfo    *string    `json:"contactInfo"`
	ExpiresAt      *time.Time `json:"expiresAt"`
}

var WatchListFields = FieldSet{
	"licensePlate":   false,
	"reason":         false,
	"description":    true,
	"severity":       false,
	"addedBy":        false,
	"isActive":       false,
	"vehicleDetails": true,
	"caseNumber":     true,
	"contactInfo":    true,
	"expiresAt":      true,
}

func NewWatchListEntry(in WatchListEntryInput, now time.Time) WatchListEntry {
	entry := WatchListEntry{
		LicensePlate:   strings.ToUpper(in.LicensePlate),
		Reason:         in.Reason,
		Description:    in.Description,
		Severity:       in.Severity,
		AddedBy:        in.AddedBy,
		IsActive:       true,
		VehicleDetails: in.VehicleDetails,
		CaseNumber:     in.CaseNumber,
		ContactInfo:    in.ContactInfo,
		ExpiresAt:      in.ExpiresAt,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if entry.Severity == "" {
		entry.Severity = SeverityMedium
	}
	if in.IsActive != nil {
		entry.IsActive = *in.IsActive
	}
	return entry
}

// checkFields rejects plates that normalize to nothing, since such an entry
// could never match a lookup.
func (e WatchListEntry) checkFields() []FieldError {
	if e.LicensePlate != "" && NormalizePlate(e.LicensePlate) == "" {
		return []FieldError{{Field: "licensePlate", Message: "must contain letters or digits"}}
	}
	return nil
}

// ActiveAt reports whether the entry is enabled and not yet expired at now.
func (e WatchListEntry) ActiveAt(now time.Time) bool {
	return e.IsActive && (e.ExpiresAt == nil || e.ExpiresAt.After(now))
}

// Matches compares plates after normalization on both sides.
func (e WatchListEntry) Matches(normalizedPlate string) bool {
	return NormalizePlate(e.LicensePlate) == normalizedPlate
}

package models

import "time"

const (
	StatusOnline  = "online"
	StatusOffline = "offline"
	StatusError   = "error"
)

type Hub struct {
	ID            int            `json:"id"`
	Name          string         `json:"name" validate:"required"`
	Location      string         `json:"location" validate:"required"`
	SerialNumber  string         `json:"serialNumber" validate:"required"`
	Status        string         `json:"status" validate:"required|in:online,offline,error"`
	SystemArmed   bool           `json:"systemArmed"`
	LastHeartbeat time.Time      `json:"lastHeartbeat"`
	Configuration map[string]any `json:"configuration"`
}

type HubInput struct {
	Name          string         `json:"name"`
	Location      string         `json:"location"`
	SerialNumber  string         `json:"serialNumber"`
	Status        string         `json:"status"`
	SystemArmed   *bool          `json:"systemArmed"`
	Configuration map[string]any `json:"configuration"`
}

var HubFields = FieldSet{
	"name":          false,
	"location":      false,
	"serialNumber":  false,
	"status":        false,
	"systemArmed":   false,
	"lastHeartbeat": false,
	"configuration": true,
}

// NewHub fills defaults for omitted optional fields. The id is assigned by
// the store.
func NewHub(in HubInput, now time.Time) Hub {
	hub := Hub{
		Name:          in.Name,
		Location:      in.Location,
		SerialNumber:  in.SerialNumber,
		Status:        in.Status,
		LastHeartbeat: now,
		Configuration: in.Configuration,
	}
	if hub.Status == "" {
		hub.Status = StatusOffline
	}
	if in.SystemArmed != nil {
		hub.SystemArmed = *in.SystemArmed
	}
	return hub
}

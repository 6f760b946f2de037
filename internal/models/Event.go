package models

import "time"

const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Event is immutable after creation except for the one-way acknowledged flag.
type Event struct {
	ID                     int            `json:"id"`
	HubID                  int            `json:"hubId" validate:"required|min:1"`
	CameraID               *int           `json:"cameraId"`
	Type                   string         `json:"type" validate:"required"`
	Severity               string         `json:"severity" validate:"required|in:low,medium,high,critical"`
	Title                  string         `json:"title" validate:"required"`
	Description            *string        `json:"description"`
	Timestamp              time.Time      `json:"timestamp"`
	Acknowledged           bool           `json:"acknowledged"`
	Metadata               map[string]any `json:"metadata"`
	LicensePlate           *string        `json:"licensePlate"`
	LicensePlateThumbnail  *string        `json:"licensePlateThumbnail"`
	LicensePlateConfidence *float64       `json:"licensePlateConfidence"`
}

type EventInput struct {
	HubID                  int            `json:"hubId"`
	CameraID               *int           `json:"cameraId"`
	Type                   string         `json:"type"`
	Severity               string         `json:"severity"`
	Title                  string         `json:"title"`
	Description            *string        `json:"description"`
	Acknowledged           *bool          `json:"acknowledged"`
	Metadata               map[string]any `json:"metadata"`
	LicensePlate           *string        `json:"licensePlate"`
	LicensePlateThumbnail  *string        `json:"licensePlateThumbnail"`
	LicensePlateConfidence *float64       `json:"licensePlateConfidence"`
}

func NewEvent(in EventInput, now time.Time) Event {
	ev := Event{
		HubID:                  in.HubID,
		CameraID:               in.CameraID,
		Type:                   in.Type,
		Severity:               in.Severity,
		Title:                  in.Title,
		Description:            in.Description,
		Timestamp:              now,
		Metadata:               in.Metadata,
		LicensePlate:           in.LicensePlate,
		LicensePlateThumbnail:  in.LicensePlateThumbnail,
		LicensePlateConfidence: in.LicensePlateConfidence,
	}
	if in.Acknowledged != nil {
		ev.Acknowledged = *in.Acknowledged
	}
	return ev
}

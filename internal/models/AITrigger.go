package models

import "time"

const DefaultTriggerConfidence = 70

// AITrigger describes a detection rule for an external analysis process.
// HubIDs and CameraIDs are free-form references and are not checked against
// the hub and camera collections.
type AITrigger struct {
	ID          int       `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description *string   `json:"description"`
	Prompt      string    `json:"prompt" validate:"required"`
	Severity    string    `json:"severity" validate:"required|in:low,medium,high,critical"`
	Enabled     bool      `json:"enabled"`
	Confidence  int       `json:"confidence" validate:"min:0|max:100"`
	HubIDs      []string  `json:"hubIds"`
	CameraIDs   []string  `json:"cameraIds"`
	Actions     []string  `json:"actions"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type AITriggerInput struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Prompt      string   `json:"prompt"`
	Severity    string   `json:"severity"`
	Enabled     *bool    `json:"enabled"`
	Confidence  *int     `json:"confidence"`
	HubIDs      []string `json:"hubIds"`
	CameraIDs   []string `json:"cameraIds"`
	Actions     []string `json:"actions"`
}

var AITriggerFields = FieldSet{
	"name":        false,
	"description": true,
	"prompt":      false,
	"severity":    false,
	"enabled":     false,
	"confidence":  false,
	"hubIds":      true,
	"cameraIds":   true,
	"actions":     true,
}

func NewAITrigger(in AITriggerInput, now time.Time) AITrigger {
	trg := AITrigger{
		Name:        in.Name,
		Description: in.Description,
		Prompt:      in.Prompt,
		Severity:    in.Severity,
		Enabled:     true,
		Confidence:  DefaultTriggerConfidence,
		HubIDs:      in.HubIDs,
		CameraIDs:   in.CameraIDs,
		Actions:     in.Actions,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.Enabled != nil {
		trg.Enabled = *in.Enabled
	}
	if in.Confidence != nil {
		trg.Confidence = *in.Confidence
	}
	return trg
}

package models

type Camera struct {
	ID           int     `json:"id"`
	HubID        int     `json:"hubId" validate:"required|min:1"`
	Name         string  `json:"name" validate:"required"`
	Location     string  `json:"location" validate:"required"`
	IPAddress    string  `json:"ipAddress" validate:"required"`
	Status       string  `json:"status" validate:"required|in:online,offline,error"`
	IsRecording  bool    `json:"isRecording"`
	StreamURL    *string `json:"streamUrl"`
	ThumbnailURL *string `json:"thumbnailUrl"`
}

type CameraInput struct {
	HubID        int     `json:"hubId"`
	Name         string  `json:"name"`
	Location     string  `json:"location"`
	IPAddress    string  `json:"ipAddress"`
	Status       string  `json:"status"`
	IsRecording  *bool   `json:"isRecording"`
	StreamURL    *string `json:"streamUrl"`
	ThumbnailURL *string `json:"thumbnailUrl"`
}

var CameraFields = FieldSet{
	"hubId":        false,
	"name":         false,
	"location":     false,
	"ipAddress":    false,
	"status":       false,
	"isRecording":  false,
	"streamUrl":    true,
	"thumbnailUrl": true,
}

func NewCamera(in CameraInput) Camera {
	cam := Camera{
		HubID:        in.HubID,
		Name:         in.Name,
		Location:     in.Location,
		IPAddress:    in.IPAddress,
		Status:       in.Status,
		StreamURL:    in.StreamURL,
		ThumbnailURL: in.ThumbnailURL,
	}
	if cam.Status == "" {
		cam.Status = StatusOffline
	}
	if in.IsRecording != nil {
		cam.IsRecording = *in.IsRecording
	}
	return cam
}

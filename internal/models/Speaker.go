package models

const DefaultSpeakerVolume = 50

type Speaker struct {
	ID        int    `json:"id"`
	HubID     int    `json:"hubId" validate:"required|min:1"`
	Name      string `json:"name" validate:"required"`
	Zone      string `json:"zone" validate:"required"`
	IPAddress string `json:"ipAddress" validate:"required"`
	Status    string `json:"status" validate:"required|in:online,offline,error"`
	Volume    int    `json:"volume" validate:"min:0|max:100"`
	IsActive  bool   `json:"isActive"`
}

type SpeakerInput struct {
	HubID     int    `json:"hubId"`
	Name      string `json:"name"`
	Zone      string `json:"zone"`
	IPAddress string `json:"ipAddress"`
	Status    string `json:"status"`
	Volume    *int   `json:"volume"`
	IsActive  *bool  `json:"isActive"`
}

var SpeakerFields = FieldSet{
	"hubId":     false,
	"name":      false,
	"zone":      false,
	"ipAddress": false,
	"status":    false,
	"volume":    false,
	"isActive":  false,
}

func NewSpeaker(in SpeakerInput) Speaker {
	sp := Speaker{
		HubID:     in.HubID,
		Name:      in.Name,
		Zone:      in.Zone,
		IPAddress: in.IPAddress,
		Status:    in.Status,
		Volume:    DefaultSpeakerVolume,
	}
	if sp.Status == "" {
		sp.Status = StatusOffline
	}
	if in.Volume != nil {
		sp.Volume = *in.Volume
	}
	if in.IsActive != nil {
		sp.IsActive = *in.IsActive
	}
	return sp
}

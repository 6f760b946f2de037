package services

import (
	"time"

	"github.com/samber/lo"
	"hubdash/internal/models"
)

const thumbnailBase = "https://images.unsplash.com/photo-"

// seed loads the fixture snapshot with fixed ids. Each collection's counter
// ends up past its highest seeded id.
func seed(ds *DataStore, now time.Time) {
	ago := func(d time.Duration) time.Time { return now.Add(-d) }

	for _, h := range []models.Hub{
		{ID: 1, Name: "Hub-01", Location: "Main Building", SerialNumber: "AO-HUB-001-2024", Status: models.StatusOnline, SystemArmed: true, LastHeartbeat: now,
			Configuration: map[string]any{"zones": 4, "maxCameras": 16}},
		{ID: 2, Name: "Hub-02", Location: "Parking Lot", SerialNumber: "AO-HUB-002-2024", Status: models.StatusOnline, SystemArmed: false, LastHeartbeat: now,
			Configuration: map[string]any{"zones": 2, "maxCameras": 8}},
		{ID: 3, Name: "Hub-03", Location: "Perimeter", SerialNumber: "AO-HUB-003-2024", Status: models.StatusOffline, SystemArmed: false, LastHeartbeat: ago(30 * time.Minute),
			Configuration: map[string]any{"zones": 3, "maxCameras": 12}},
	} {
		ds.hubs.Put(h.ID, h)
	}

	camera := func(id, hubID int, name, location, ip, thumb string) models.Camera {
		return models.Camera{
			ID: id, HubID: hubID, Name: name, Location: location, IPAddress: ip,
			Status: models.StatusOnline, IsRecording: true,
			StreamURL:    lo.ToPtr("rtsp://" + ip + "/stream"),
			ThumbnailURL: lo.ToPtr(thumbnailBase + thumb + "?w=400&h=300&fit=crop"),
		}
	}
	perimeter := camera(6, 3, "Perimeter North", "North Fence", "192.168.1.300", "")
	perimeter.Status = models.StatusOffline
	perimeter.IsRecording = false
	perimeter.ThumbnailURL = nil
	for _, c := range []models.Camera{
		camera(1, 1, "Entrance", "Main Entrance", "192.168.1.100", "1557804506-669a67965ba0"),
		camera(2, 1, "Lobby", "Main Lobby", "192.168.1.101", "1497366216548-37526070297c"),
		camera(3, 1, "Server Room", "Server Room", "192.168.1.102", "1558494949-ef010cbdcc31"),
		camera(4, 2, "Parking Garage", "Level B1", "192.168.1.200", "1506521781263-d8422e82f27a"),
		camera(5, 2, "Parking Exit", "Exit Gate", "192.168.1.201", "1545179605-1296651e9d43"),
		perimeter,
	} {
		ds.cameras.Put(c.ID, c)
	}

	for _, e := range []models.Event{
		{ID: 1, HubID: 1, CameraID: lo.ToPtr(2), Type: "person_detection", Severity: models.SeverityMedium,
			Title: "Unauthorized Person Detected", Description: lo.ToPtr("Person detected in restricted area after hours"),
			Timestamp: ago(2 * time.Minute), Metadata: map[string]any{"confidence": 0.87, "zone": "Lobby"}},
		{ID: 2, HubID: 1, Type: "system", Severity: models.SeverityLow,
			Title: "System Armed", Description: lo.ToPtr("Security system armed by schedule"),
			Timestamp: ago(15 * time.Minute), Acknowledged: true},
		{ID: 3, HubID: 3, CameraID: lo.ToPtr(6), Type: "connection", Severity: models.SeverityHigh,
			Title: "Connection Lost", Description: lo.ToPtr("Camera Perimeter North stopped responding"),
			Timestamp: ago(60 * time.Minute)},
		{ID: 4, HubID: 1, CameraID: lo.ToPtr(1), Type: "license_plate", Severity: models.SeverityMedium,
			Title: "License Plate Detected", Description: lo.ToPtr("Vehicle entered through main entrance"),
			Timestamp: ago(5 * time.Minute), LicensePlate: lo.ToPtr("ABC-1234"),
			LicensePlateThumbnail: lo.ToPtr(thumbnailBase + "1494976388531-d1058494cdd8?w=200&h=100&fit=crop"), LicensePlateConfidence: lo.ToPtr(0.92)},
		{ID: 5, HubID: 2, CameraID: lo.ToPtr(4), Type: "weapon_detection", Severity: models.SeverityCritical,
			Title: "Weapon Detected", Description: lo.ToPtr("Possible firearm detected in parking garage"),
			Timestamp: ago(30 * time.Minute), Metadata: map[string]any{"confidence": 0.81, "object": "handgun"}},
		{ID: 6, HubID: 1, CameraID: lo.ToPtr(1), Type: "license_plate", Severity: models.SeverityCritical,
			Title: "Watch List Vehicle Detected", Description: lo.ToPtr("Vehicle ABC-1234 matches an active watch list entry"),
			Timestamp: ago(45 * time.Minute), Metadata: map[string]any{"watchListId": 1, "reason": "stolen"},
			LicensePlate: lo.ToPtr("ABC-1234"), LicensePlateConfidence: lo.ToPtr(0.96)},
		{ID: 7, HubID: 3, CameraID: lo.ToPtr(5), Type: "suspicious_behavior", Severity: models.SeverityHigh,
			Title: "Loitering Detected", Description: lo.ToPtr("Individual remained near exit gate for over 10 minutes"),
			Timestamp: ago(75 * time.Minute)},
	} {
		ds.events.Put(e.ID, e)
	}

	for _, s := range []models.Speaker{
		{ID: 1, HubID: 1, Name: "Main Speaker", Zone: "Zone 1", IPAddress: "192.168.1.150", Status: models.StatusOnline, Volume: 75, IsActive: true},
		{ID: 2, HubID: 2, Name: "Parking Speaker", Zone: "Zone 2", IPAddress: "192.168.1.250", Status: models.StatusOnline, Volume: 50, IsActive: false},
	} {
		ds.speakers.Put(s.ID, s)
	}

	for _, t := range []models.AITrigger{
		{ID: 1, Name: "Weapon Detection", Description: lo.ToPtr("Alert on visible firearms or knives"),
			Prompt: "Detect any person carrying a weapon such as a gun or knife", Severity: models.SeverityCritical,
			Enabled: true, Confidence: 80, HubIDs: []string{"1", "2"}, CameraIDs: []string{},
			Actions: []string{"email", "notification", "sms"}, CreatedAt: ago(7 * 24 * time.Hour), UpdatedAt: ago(7 * 24 * time.Hour)},
		{ID: 2, Name: "Suspicious Behavior", Description: lo.ToPtr("Loitering or repeated passes near entrances"),
			Prompt: "Detect people loitering or behaving suspiciously near entrances", Severity: models.SeverityMedium,
			Enabled: true, Confidence: 70, HubIDs: []string{"1"}, CameraIDs: []string{"1", "2"},
			Actions: []string{"notification"}, CreatedAt: ago(3 * 24 * time.Hour), UpdatedAt: ago(3 * 24 * time.Hour)},
	} {
		ds.triggers.Put(t.ID, t)
	}

	for _, w := range []models.WatchListEntry{
		{ID: 1, LicensePlate: "ABC-1234", Reason: "stolen", Description: lo.ToPtr("Reported stolen from downtown garage"),
			Severity: models.SeverityCritical, AddedBy: "Officer Johnson", IsActive: true,
			VehicleDetails: lo.ToPtr(`{"make":"Honda","model":"Civic","year":2020,"color":"Black"}`),
			CaseNumber:     lo.ToPtr("CASE-2024-001"), ContactInfo: lo.ToPtr("Detective Smith - ext. 4455"),
			CreatedAt: ago(2 * 24 * time.Hour), UpdatedAt: ago(2 * 24 * time.Hour)},
		{ID: 2, LicensePlate: "XYZ-9876", Reason: "suspect", Description: lo.ToPtr("Vehicle linked to ongoing investigation"),
			Severity: models.SeverityHigh, AddedBy: "Detective Williams", IsActive: true,
			VehicleDetails: lo.ToPtr(`{"make":"Ford","model":"F-150","year":2019,"color":"White"}`),
			CaseNumber:     lo.ToPtr("CASE-2024-025"), ContactInfo: lo.ToPtr("Detective Williams - ext. 3322"),
			ExpiresAt: lo.ToPtr(now.Add(30 * 24 * time.Hour)),
			CreatedAt: ago(5 * 24 * time.Hour), UpdatedAt: ago(24 * time.Hour)},
	} {
		ds.watchList.Put(w.ID, w)
	}
}

package notification

import "time"

// Reminder push content, mirroring the in-app local notification.
const (
	ReminderTitle = "Journal Reminder"
	ReminderBody  = "Don't forget to add your journal entry for today!"
)

// DefaultReminderTime is used when the user never picked one in settings.
// The app schedules its fallback reminder just before midnight.
const DefaultReminderTime = "11:59 PM"

// DeviceToken is one registered push target for a user.
type DeviceToken struct {
	Token    string    `json:"token"`
	Platform string    `json:"platform"` // "android" | "ios"
	AddedAt  time.Time `json:"added_at"`
	LastUsed time.Time `json:"last_used"`
}

// RegisterDeviceRequest is the register-device payload.
type RegisterDeviceRequest struct {
	Token    string `json:"token"`
	Platform string `json:"platform"`
}

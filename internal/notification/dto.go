package notification

// UpsertSettingDTO replaces the caller's reminder preference. ReminderTime
// is a wall-clock time of day, "HH:MM" or "HH:MM:SS". A saved setting is
// enabled unless the caller says otherwise.
type UpsertSettingDTO struct {
	ReminderTime string `json:"reminder_time" validate:"required"`
	Enabled      *bool  `json:"enabled"`
}

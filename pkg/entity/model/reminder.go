package model

// Reminder is a spoken reminder with an importance label.
type Reminder struct {
	ID           int    `db:"id" json:"id"`
	ReminderText string `db:"reminder_text" json:"reminder_text"`
	Importance   string `db:"importance" json:"importance"`
}

// CreateReminderInput represents the arguments of an addReminder tool call.
type CreateReminderInput struct {
	ReminderText string `json:"reminder_text"`
	Importance   string `json:"importance"`
}

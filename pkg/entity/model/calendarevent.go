package model

import "time"

// CalendarEvent is a scheduled entry with a start and end timestamp.
type CalendarEvent struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	EventFrom   time.Time `db:"event_from" json:"event_from"`
	EventTo     time.Time `db:"event_to" json:"event_to"`
}

// CreateCalendarEventInput represents the arguments of an addCalendarEntry
// tool call after its timestamps have been parsed.
type CreateCalendarEventInput struct {
	Title       string
	Description string
	EventFrom   time.Time
	EventTo     time.Time
}

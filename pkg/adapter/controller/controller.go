package controller

// Controller struct holds the controller of the entire app
type Controller struct {
	Todo          interface{ Todo }
	Reminder      interface{ Reminder }
	CalendarEvent interface{ CalendarEvent }
}

package models

// BookingPurpose enumerates why a room is being reserved. Other is a
// catch-all; the stored value is free text constrained by the form.
type BookingPurpose string

const (
	PurposeLecture    BookingPurpose = "Lecture"
	PurposeLabSession BookingPurpose = "Lab Session"
	PurposeTutorial   BookingPurpose = "Tutorial"
	PurposeExam       BookingPurpose = "Exam"
	PurposeMeeting    BookingPurpose = "Meeting"
	PurposeWorkshop   BookingPurpose = "Workshop"
	PurposeOther      BookingPurpose = "Other"
)

// Booking reserves a room for a one-hour slot. Date is a calendar date in
// 2006-01-02 form; Start and End are HH:00 times of day.
type Booking struct {
	ID          string         `json:"id"`
	RoomID      string         `json:"room_id"`
	Date        string         `json:"date"`
	StartTime   string         `json:"start_time"`
	EndTime     string         `json:"end_time"`
	TeacherName string         `json:"teacher_name"`
	Purpose     BookingPurpose `json:"purpose"`
}

// BookingRequest is the payload for reserving a slot.
type BookingRequest struct {
	RoomID    string         `json:"room_id" validate:"required"`
	Date      string         `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime string         `json:"start_time" validate:"required,datetime=15:04"`
	EndTime   string         `json:"end_time" validate:"required,datetime=15:04"`
	Purpose   BookingPurpose `json:"purpose" validate:"required,oneof=Lecture 'Lab Session' Tutorial Exam Meeting Workshop Other"`
}

// TimeSlot is one bookable hour of the day, as rendered by the booking UI.
type TimeSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Label     string `json:"label"`
}

package models

import "time"

// Appointment statuses, in lifecycle order.
const (
	AppointmentPending   = "Pending"
	AppointmentConfirmed = "Confirmed"
	AppointmentCheckedIn = "Checked-in"
	AppointmentCompleted = "Completed"
	AppointmentCancelled = "Cancelled"
)

// ActiveAppointmentStatuses are the statuses that still occupy a slot.
var ActiveAppointmentStatuses = []string{
	AppointmentPending,
	AppointmentConfirmed,
	AppointmentCheckedIn,
}

// Appointment represents a confirmed appointment record.
type Appointment struct {
	ID          string    `bson:"id" json:"id"`                     // Unique appointment identifier (UUID)
	Service     string    `bson:"service" json:"service"`           // Service identifier (e.g. "Consultation")
	DoctorID    string    `bson:"doctor_id" json:"doctorId"`        // Doctor who was booked
	DoctorName  string    `bson:"doctor_name" json:"doctorName"`    // Denormalized for display
	Date        string    `bson:"date" json:"date"`                 // Appointment date in "YYYY-MM-DD" format
	Time        string    `bson:"time" json:"time"`                 // One of the fixed clinic slots (e.g. "10:00")
	PatientID   string    `bson:"patient_id" json:"patientId"`      // Patient who made the booking
	PatientName string    `bson:"patient_name" json:"patientName"`  // Denormalized for display
	Status      string    `bson:"status" json:"status"`             // Lifecycle status
	CreatedAt   time.Time `bson:"created_at" json:"createdAt"`      // Timestamp when the record was created
}

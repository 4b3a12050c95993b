package models

import "time"

// ShiftAssignment is one entry in a nurse's weekly schedule.
type ShiftAssignment struct {
	Day   string `bson:"day" json:"day"`     // e.g. "Monday"
	Shift string `bson:"shift" json:"shift"` // e.g. "08:00-16:00"
	Ward  string `bson:"ward,omitempty" json:"ward,omitempty"`
}

// Nurse is the role profile for accounts with the nurse role.
type Nurse struct {
	UID              string            `bson:"uid" json:"id"`
	DisplayName      string            `bson:"display_name" json:"name"`
	Email            string            `bson:"email" json:"email"`
	Department       string            `bson:"department" json:"department"`
	AssignedPatients []string          `bson:"assigned_patients" json:"assignedPatients"`
	Schedule         []ShiftAssignment `bson:"schedule" json:"schedule"`
	CreatedAt        time.Time         `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time         `bson:"updated_at" json:"updatedAt"`
}

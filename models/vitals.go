package models

import "time"

// VitalsRecord is one vitals measurement logged by a nurse for a patient.
type VitalsRecord struct {
	ID            string    `bson:"id" json:"id"`
	PatientID     string    `bson:"patient_id" json:"patientId"`
	NurseID       string    `bson:"nurse_id" json:"nurseId"`
	Temperature   float64   `bson:"temperature,omitempty" json:"temperature,omitempty"`
	HeartRate     int       `bson:"heart_rate,omitempty" json:"heartRate,omitempty"`
	BloodPressure string    `bson:"blood_pressure,omitempty" json:"bloodPressure,omitempty"`
	RespRate      int       `bson:"resp_rate,omitempty" json:"respRate,omitempty"`
	OxygenSat     float64   `bson:"oxygen_sat,omitempty" json:"oxygenSat,omitempty"`
	Notes         string    `bson:"notes,omitempty" json:"notes,omitempty"`
	Timestamp     time.Time `bson:"timestamp" json:"timestamp"`
}

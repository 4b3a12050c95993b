package models

import "time"

// LabReport references an uploaded lab result file stored in Cloudinary.
type LabReport struct {
	ID         string    `bson:"id" json:"id"`
	PatientID  string    `bson:"patient_id" json:"patientId"`
	DoctorID   string    `bson:"doctor_id" json:"doctorId"`
	Title      string    `bson:"title" json:"title"`
	FileID     string    `bson:"file_id" json:"fileId"` // Cloudinary public ID
	UploadedAt time.Time `bson:"uploaded_at" json:"uploadedAt"`
}

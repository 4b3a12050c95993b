// File: services/labs/interface.go
package labs

import (
	"context"

	labreportRepo "healthverse/database/repository/labreport"
	userRepo "healthverse/database/repository/user"
	"healthverse/models"
	"healthverse/services/storage"
)

// UploadInput carries the metadata for a lab report file upload.
type UploadInput struct {
	PatientID string
	DoctorID  string
	Title     string
	FilePath  string
}

// LabReportService manages lab result files and their metadata.
type LabReportService interface {
	Upload(ctx context.Context, in UploadInput) (*models.LabReport, error)
	ListForPatient(patientID string) ([]models.LabReport, error)
	ListForDoctor(doctorID string) ([]models.LabReport, error)
	DownloadURL(ctx context.Context, report *models.LabReport) (string, error)
}

// DefaultLabReportService is the production implementation of LabReportService.
type DefaultLabReportService struct {
	Reports labreportRepo.LabReportRepository
	Users   userRepo.UserRepository
	Storage storage.StorageService
}

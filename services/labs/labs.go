// File: services/labs/labs.go
package labs

import (
	"context"
	"fmt"
	"time"

	"healthverse/models"
	"healthverse/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const reportFolder = "lab-reports"

// downloadURLTTL bounds how long a signed report link stays valid.
const downloadURLTTL = 15 * time.Minute

// Upload stores the report file and records its metadata.
func (s *DefaultLabReportService) Upload(ctx context.Context, in UploadInput) (*models.LabReport, error) {
	if in.Title == "" {
		return nil, fmt.Errorf("report title is required")
	}
	if in.FilePath == "" {
		return nil, fmt.Errorf("report file is required")
	}
	if _, err := s.Users.GetByUID(in.PatientID); err != nil {
		return nil, fmt.Errorf("patient not found")
	}

	fileID, err := s.Storage.UploadFile(ctx, in.FilePath, reportFolder)
	if err != nil {
		return nil, fmt.Errorf("failed to store report file: %w", err)
	}

	report := &models.LabReport{
		ID:         uuid.New().String(),
		PatientID:  in.PatientID,
		DoctorID:   in.DoctorID,
		Title:      in.Title,
		FileID:     fileID,
		UploadedAt: time.Now(),
	}
	if err := s.Reports.Insert(report); err != nil {
		// Orphaned file is cleaned up so the store and the index stay in sync.
		if delErr := s.Storage.DeleteFile(ctx, fileID); delErr != nil {
			utils.GetLogger().Warn("failed to remove orphaned report file",
				zap.String("fileId", fileID), zap.Error(delErr))
		}
		return nil, fmt.Errorf("failed to record lab report: %w", err)
	}
	utils.GetLogger().Info("lab report uploaded",
		zap.String("reportId", report.ID), zap.String("patientId", in.PatientID))
	return report, nil
}

// ListForPatient returns all reports for a patient, newest first.
func (s *DefaultLabReportService) ListForPatient(patientID string) ([]models.LabReport, error) {
	return s.Reports.GetByPatient(patientID)
}

// ListForDoctor returns all reports ordered by a doctor, newest first.
func (s *DefaultLabReportService) ListForDoctor(doctorID string) ([]models.LabReport, error) {
	return s.Reports.GetByDoctor(doctorID)
}

// DownloadURL returns a signed, short-lived link for a report file.
func (s *DefaultLabReportService) DownloadURL(ctx context.Context, report *models.LabReport) (string, error) {
	return s.Storage.GetSecureDownloadURL(ctx, "raw", report.FileID, downloadURLTTL)
}

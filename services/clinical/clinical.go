// File: services/clinical/clinical.go
package clinical

import (
	"fmt"
	"time"

	"healthverse/models"
	"healthverse/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LogVitals records one vitals measurement for a patient.
func (s *DefaultClinicalService) LogVitals(nurseUID string, in VitalsInput) (*models.VitalsRecord, error) {
	if in.PatientID == "" {
		return nil, fmt.Errorf("patient id is required")
	}
	if _, err := s.Users.GetByUID(in.PatientID); err != nil {
		return nil, fmt.Errorf("patient not found")
	}
	record := &models.VitalsRecord{
		ID:            uuid.New().String(),
		PatientID:     in.PatientID,
		NurseID:       nurseUID,
		Temperature:   in.Temperature,
		HeartRate:     in.HeartRate,
		BloodPressure: in.BloodPressure,
		RespRate:      in.RespRate,
		OxygenSat:     in.OxygenSat,
		Notes:         in.Notes,
		Timestamp:     time.Now(),
	}
	if err := s.Vitals.Insert(record); err != nil {
		return nil, fmt.Errorf("failed to log vitals: %w", err)
	}
	utils.GetLogger().Info("vitals logged",
		zap.String("nurseId", nurseUID), zap.String("patientId", in.PatientID))
	return record, nil
}

// PatientVitals returns all vitals recorded for a patient, newest first.
func (s *DefaultClinicalService) PatientVitals(patientID string) ([]models.VitalsRecord, error) {
	return s.Vitals.GetByPatient(patientID)
}

// Panel returns a nurse profile with their assigned patients resolved.
func (s *DefaultClinicalService) Panel(nurseUID string) (*NursePanel, error) {
	nurse, err := s.Nurses.GetByUID(nurseUID)
	if err != nil {
		return nil, fmt.Errorf("nurse profile not found")
	}
	patients := make([]models.User, 0, len(nurse.AssignedPatients))
	for _, pid := range nurse.AssignedPatients {
		patient, err := s.Users.GetByUID(pid)
		if err != nil {
			utils.GetLogger().Warn("assigned patient not found",
				zap.String("nurseId", nurseUID), zap.String("patientId", pid))
			continue
		}
		patients = append(patients, *patient)
	}
	return &NursePanel{Nurse: *nurse, Patients: patients}, nil
}

// AssignPatient adds a patient to a nurse's panel.
func (s *DefaultClinicalService) AssignPatient(nurseUID, patientID string) error {
	if _, err := s.Nurses.GetByUID(nurseUID); err != nil {
		return fmt.Errorf("nurse profile not found")
	}
	patient, err := s.Users.GetByUID(patientID)
	if err != nil {
		return fmt.Errorf("patient not found")
	}
	if patient.Role != models.RolePatient {
		return fmt.Errorf("user %s is not a patient", patientID)
	}
	return s.Nurses.AssignPatient(nurseUID, patientID)
}

// UpdateSchedule replaces a nurse's shift schedule.
func (s *DefaultClinicalService) UpdateSchedule(nurseUID string, schedule []models.ShiftAssignment) error {
	if _, err := s.Nurses.GetByUID(nurseUID); err != nil {
		return fmt.Errorf("nurse profile not found")
	}
	for _, shift := range schedule {
		if shift.Day == "" || shift.Shift == "" {
			return fmt.Errorf("each shift assignment requires a day and a shift")
		}
	}
	return s.Nurses.UpdateSchedule(nurseUID, schedule)
}

// ListNurses returns all nurse profiles.
func (s *DefaultClinicalService) ListNurses() ([]models.Nurse, error) {
	return s.Nurses.GetAll()
}

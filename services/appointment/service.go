package appointment

import (
	"errors"
	"fmt"
	"time"

	"healthverse/models"
)

// ErrNotAppointmentOwner is returned when an account tries to cancel an
// appointment it does not own and lacks a front-desk role.
var ErrNotAppointmentOwner = errors.New("appointment belongs to another patient")

// slotDuration is how long one clinic slot runs; a slot counts as passed
// once this much time has elapsed after its start.
const slotDuration = time.Hour

// ListForPatient returns the patient's appointment history.
func (s *DefaultAppointmentService) ListForPatient(patientID string) ([]models.Appointment, error) {
	return s.Repo.GetByPatient(patientID)
}

// ListForDoctor returns the doctor's appointments.
func (s *DefaultAppointmentService) ListForDoctor(doctorID string) ([]models.Appointment, error) {
	return s.Repo.GetByDoctor(doctorID)
}

// ListAll returns every appointment record.
func (s *DefaultAppointmentService) ListAll() ([]models.Appointment, error) {
	return s.Repo.GetAll()
}

// CheckIn marks a confirmed appointment as checked in at the front desk.
func (s *DefaultAppointmentService) CheckIn(appointmentID string) error {
	appt, err := s.Repo.GetByID(appointmentID)
	if err != nil {
		return err
	}
	if appt.Status != models.AppointmentConfirmed {
		return fmt.Errorf("appointment %s is %s, not %s", appointmentID, appt.Status, models.AppointmentConfirmed)
	}
	return s.Repo.UpdateStatus(appointmentID, models.AppointmentCheckedIn)
}

// Cancel marks an active appointment as cancelled. Patients may only
// cancel their own appointments; front-desk staff may cancel any.
func (s *DefaultAppointmentService) Cancel(appointmentID, requesterID, requesterRole string) error {
	appt, err := s.Repo.GetByID(appointmentID)
	if err != nil {
		return err
	}
	switch requesterRole {
	case models.RoleAdmin, models.RoleReceptionist:
	default:
		if appt.PatientID != requesterID {
			return ErrNotAppointmentOwner
		}
	}
	switch appt.Status {
	case models.AppointmentCompleted, models.AppointmentCancelled:
		return fmt.Errorf("appointment %s is already %s", appointmentID, appt.Status)
	}
	return s.Repo.UpdateStatus(appointmentID, models.AppointmentCancelled)
}

// Finalize closes out an appointment after its slot has passed. Called by
// the background worker; still-active records become Completed, anything
// already terminal is left alone.
func (s *DefaultAppointmentService) Finalize(appointmentID string) error {
	appt, err := s.Repo.GetByID(appointmentID)
	if err != nil {
		return err
	}
	switch appt.Status {
	case models.AppointmentCompleted, models.AppointmentCancelled:
		return nil
	}

	start, err := time.ParseInLocation("2006-01-02 15:04", appt.Date+" "+appt.Time, time.Local)
	if err != nil {
		return fmt.Errorf("appointment %s has unparseable slot %s %s: %w", appointmentID, appt.Date, appt.Time, err)
	}
	if time.Now().Before(start.Add(slotDuration)) {
		return fmt.Errorf("appointment %s slot has not passed yet", appointmentID)
	}
	return s.Repo.UpdateStatus(appointmentID, models.AppointmentCompleted)
}

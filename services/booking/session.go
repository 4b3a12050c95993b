// File: services/booking/session.go
package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"healthverse/models"
	"healthverse/utils"

	appointmentRepo "healthverse/database/repository/appointment"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	sessionPrefix = "booking:sess:"
	submitPrefix  = "booking:submit:"

	// sessionTTL bounds wizard abandonment; every write refreshes it.
	sessionTTL = 30 * time.Minute

	// submitLockTTL covers one in-flight persistence attempt.
	submitLockTTL = 30 * time.Second
)

// Initiate creates a new wizard session for the signed-in patient. When the
// triage path supplies a pre-selected service, the session enters directly
// at the doctor-selection step.
func (s *DefaultBookingSessionService) Initiate(sess models.SessionContext, preselectedService string) (*models.BookingResponse, error) {
	session := models.BookingSession{
		SessionID:   uuid.New().String(),
		Step:        models.StepSelectingService,
		PatientID:   sess.PatientID,
		PatientName: sess.PatientName,
	}

	if preselectedService != "" {
		if err := s.applyService(&session, preselectedService); err != nil {
			return nil, err
		}
	}

	if err := s.saveSession(&session); err != nil {
		return nil, err
	}

	resp := &models.BookingResponse{
		SessionID: session.SessionID,
		Step:      session.Step,
		Services:  models.ClinicServices,
	}
	if session.Step == models.StepSelectingDoctor {
		resp.Doctors = session.MatchedDoctors
	}
	return resp, nil
}

// SelectService records the service choice and advances to doctor selection.
// Choosing a service always clears any previously chosen doctor, since the
// capability-filtered doctor set changes with the service.
func (s *DefaultBookingSessionService) SelectService(sessionID, serviceID string) (*models.BookingResponse, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSelectingService {
		return nil, NewFlowError(CodeInvalidStep, fmt.Sprintf("cannot select a service at step %s", session.Step))
	}

	if err := s.applyService(session, serviceID); err != nil {
		return nil, err
	}
	if err := s.saveSession(session); err != nil {
		return nil, err
	}

	return &models.BookingResponse{
		SessionID: session.SessionID,
		Step:      session.Step,
		Doctors:   session.MatchedDoctors,
	}, nil
}

// applyService validates the service, computes the capability-filtered
// doctor set, and resets any stale doctor selection.
func (s *DefaultBookingSessionService) applyService(session *models.BookingSession, serviceID string) error {
	if !models.ValidService(serviceID) {
		return NewFlowError(CodeUnknownService, fmt.Sprintf("unknown service %q", serviceID))
	}

	doctors, err := s.DoctorRepo.GetByService(serviceID)
	if err != nil {
		return fmt.Errorf("failed to match doctors: %w", err)
	}
	if len(doctors) == 0 {
		return NewFlowError(CodeNoDoctorsAvailable, fmt.Sprintf("no doctors available for %s", serviceID))
	}

	session.Service = serviceID
	session.MatchedDoctors = doctors
	session.SelectedDoctorID = ""
	session.DoctorName = ""
	session.Step = models.StepSelectingDoctor
	return nil
}

// SelectDoctor records the doctor choice. The doctor must be a member of the
// set filtered by the current service; the capability is re-checked since the
// draft can go stale when the user navigates back and changes the service.
func (s *DefaultBookingSessionService) SelectDoctor(sessionID, doctorID string) (*models.BookingResponse, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSelectingDoctor {
		return nil, NewFlowError(CodeInvalidStep, fmt.Sprintf("cannot select a doctor at step %s", session.Step))
	}

	var selected *models.Doctor
	for i := range session.MatchedDoctors {
		if session.MatchedDoctors[i].UID == doctorID {
			selected = &session.MatchedDoctors[i]
			break
		}
	}
	if selected == nil || !selected.OffersService(session.Service) {
		return nil, NewFlowError(CodeInvalidDoctor, fmt.Sprintf("doctor %s is not available for %s", doctorID, session.Service))
	}

	session.SelectedDoctorID = selected.UID
	session.DoctorName = selected.DisplayName
	session.Step = models.StepSelectingDateTime
	if err := s.saveSession(session); err != nil {
		return nil, err
	}

	return &models.BookingResponse{
		SessionID: session.SessionID,
		Step:      session.Step,
		TimeSlots: models.TimeSlots,
	}, nil
}

// SelectSlot records the date and time choice. The time must be a member of
// the fixed clinic slot list; arbitrary times are never accepted.
func (s *DefaultBookingSessionService) SelectSlot(sessionID, date, timeSlot string) (*models.BookingResponse, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepSelectingDateTime {
		return nil, NewFlowError(CodeInvalidStep, fmt.Sprintf("cannot select a slot at step %s", session.Step))
	}

	if _, err := time.Parse("2006-01-02", strings.TrimSpace(date)); err != nil {
		return nil, NewFlowError(CodeInvalidSlot, fmt.Sprintf("invalid date %q", date))
	}
	if !models.ValidTimeSlot(timeSlot) {
		return nil, NewFlowError(CodeInvalidSlot, fmt.Sprintf("time %q is not a bookable slot", timeSlot))
	}

	session.Date = strings.TrimSpace(date)
	session.Time = timeSlot
	session.Step = models.StepConfirming
	if err := s.saveSession(session); err != nil {
		return nil, err
	}

	return &models.BookingResponse{
		SessionID: session.SessionID,
		Step:      session.Step,
	}, nil
}

// Back moves the wizard one step backwards. Selections made so far are kept;
// re-selecting a service clears the doctor via applyService.
func (s *DefaultBookingSessionService) Back(sessionID string) (*models.BookingResponse, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}

	prev := session.Step.Prev()
	if prev == session.Step {
		return nil, NewFlowError(CodeInvalidStep, fmt.Sprintf("cannot go back from step %s", session.Step))
	}
	session.Step = prev
	if err := s.saveSession(session); err != nil {
		return nil, err
	}

	resp := &models.BookingResponse{
		SessionID: session.SessionID,
		Step:      session.Step,
	}
	switch session.Step {
	case models.StepSelectingService:
		resp.Services = models.ClinicServices
	case models.StepSelectingDoctor:
		resp.Doctors = session.MatchedDoctors
	case models.StepSelectingDateTime:
		resp.TimeSlots = models.TimeSlots
	}
	return resp, nil
}

// Confirm performs the single persistence write for the accumulated draft.
// A submit-in-progress lock makes a duplicate confirm a no-op, and on any
// failure the draft survives at the confirming step so the user can retry
// without re-entering selections.
func (s *DefaultBookingSessionService) Confirm(sessionID string) (*models.BookingResponse, error) {
	ctx := context.Background()
	logger := utils.GetLogger()

	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.StepConfirming {
		return nil, NewFlowError(CodeInvalidStep, fmt.Sprintf("cannot confirm at step %s", session.Step))
	}
	if session.Service == "" || session.SelectedDoctorID == "" || session.Date == "" || session.Time == "" || session.PatientID == "" {
		return nil, NewFlowError(CodeIncompleteDraft, "booking draft is missing required selections")
	}

	lockKey := submitPrefix + sessionID
	acquired, err := s.Cache.SetNX(ctx, lockKey, "1", submitLockTTL).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire submit lock: %w", err)
	}
	if !acquired {
		return nil, NewFlowError(CodeSubmitInProgress, "a confirmation for this session is already in flight")
	}

	appt := &models.Appointment{
		ID:          uuid.New().String(),
		Service:     session.Service,
		DoctorID:    session.SelectedDoctorID,
		DoctorName:  session.DoctorName,
		Date:        session.Date,
		Time:        session.Time,
		PatientID:   session.PatientID,
		PatientName: session.PatientName,
		Status:      models.AppointmentConfirmed,
		CreatedAt:   time.Now(),
	}

	if err := s.ApptRepo.Create(appt); err != nil {
		// Release the lock so the user can retry; the draft stays intact.
		s.Cache.Del(ctx, lockKey)
		if err == appointmentRepo.ErrSlotTaken {
			return nil, NewFlowError(CodeSlotTaken, "that time slot was just taken; please pick another")
		}
		return nil, NewFlowError(CodePersistence, "failed to save the appointment; please try again")
	}

	if s.Tasks != nil {
		if err := s.Tasks.ScheduleFinalize(appt); err != nil {
			logger.Warn("failed to schedule appointment finalize task",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}

	s.Cache.Del(ctx, sessionPrefix+sessionID, lockKey)

	return &models.BookingResponse{
		SessionID:   sessionID,
		Step:        models.StepSubmitted,
		Appointment: appt,
	}, nil
}

// Cancel discards the wizard session.
func (s *DefaultBookingSessionService) Cancel(sessionID string) error {
	ctx := context.Background()
	if err := s.Cache.Del(ctx, sessionPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to cancel booking session: %w", err)
	}
	return nil
}

func (s *DefaultBookingSessionService) loadSession(sessionID string) (*models.BookingSession, error) {
	ctx := context.Background()
	data, err := s.Cache.Get(ctx, sessionPrefix+sessionID).Result()
	if err != nil {
		return nil, NewFlowError(CodeSessionNotFound, "booking session not found or expired")
	}
	var session models.BookingSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &session, nil
}

func (s *DefaultBookingSessionService) saveSession(session *models.BookingSession) error {
	ctx := context.Background()
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, sessionPrefix+session.SessionID, data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

package models

// BookingStep enumerates the wizard's states. Transitions are linear;
// the only backward movement is an explicit Back.
type BookingStep string

const (
	StepSelectingService  BookingStep = "selecting_service"
	StepSelectingDoctor   BookingStep = "selecting_doctor"
	StepSelectingDateTime BookingStep = "selecting_datetime"
	StepConfirming        BookingStep = "confirming"
	StepSubmitted         BookingStep = "submitted"
)

// Prev returns the step reached by a Back transition, or the step itself
// when no backward transition exists.
func (s BookingStep) Prev() BookingStep {
	switch s {
	case StepSelectingDoctor:
		return StepSelectingService
	case StepSelectingDateTime:
		return StepSelectingDoctor
	case StepConfirming:
		return StepSelectingDateTime
	}
	return s
}

// BookingSession is the wizard's draft state between initiation and
// confirmation. It lives in the session cache and is discarded on submit
// or abandonment.
type BookingSession struct {
	SessionID   string      `json:"sessionId"`
	Step        BookingStep `json:"step"`
	PatientID   string      `json:"patientId"`
	PatientName string      `json:"patientName"`

	Service          string   `json:"service,omitempty"`
	MatchedDoctors   []Doctor `json:"matchedDoctors,omitempty"`
	SelectedDoctorID string   `json:"selectedDoctorId,omitempty"`
	DoctorName       string   `json:"doctorName,omitempty"`
	Date             string   `json:"date,omitempty"`
	Time             string   `json:"time,omitempty"`
}

// BookingResponse is the wire shape returned after each wizard operation.
type BookingResponse struct {
	SessionID   string       `json:"sessionId,omitempty"`
	Step        BookingStep  `json:"step,omitempty"`
	Services    []Service    `json:"services,omitempty"`
	Doctors     []Doctor     `json:"doctors,omitempty"`
	TimeSlots   []string     `json:"timeSlots,omitempty"`
	Appointment *Appointment `json:"appointment,omitempty"`
}

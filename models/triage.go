package models

// SessionContext identifies the signed-in patient on whose behalf a triage
// or booking operation runs. Always passed explicitly, never read from
// ambient state.
type SessionContext struct {
	PatientID   string `json:"patientId"`
	PatientName string `json:"patientName"`
}

// SymptomReport is the free-text symptom description submitted for triage.
// It exists only for the duration of one triage call and is never persisted.
type SymptomReport struct {
	Symptoms string `json:"symptoms"`
}

// TriageResult is the structured output of the triage model.
// TriageScore is always within [1,10]; out-of-range model output is
// rejected at the boundary, never stored here.
type TriageResult struct {
	PreDiagnosis string `json:"preDiagnosis"`
	TriageScore  int    `json:"triageScore"`
}

// Dispositions a triage assessment can route to.
const (
	DispositionEmergency       = "emergency"
	DispositionBookAppointment = "book_appointment"
)

// TriageAssessment is the triage result plus the routing decision derived
// from the score.
type TriageAssessment struct {
	Result           TriageResult `json:"result"`
	Disposition      string       `json:"disposition"`
	EmergencyPhone   string       `json:"emergencyPhone,omitempty"`
	SuggestedService string       `json:"suggestedService,omitempty"`
}

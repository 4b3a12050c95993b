package booking

import "fmt"

// FlowError codes.
const (
	CodeSessionNotFound    = "sessionNotFound"
	CodeInvalidStep        = "invalidStep"
	CodeUnknownService     = "unknownService"
	CodeNoDoctorsAvailable = "noDoctorsAvailable"
	CodeInvalidDoctor      = "invalidDoctor"
	CodeInvalidSlot        = "invalidSlot"
	CodeIncompleteDraft    = "incompleteDraft"
	CodeSlotTaken          = "slotTaken"
	CodeSubmitInProgress   = "submitInProgress"
	CodePersistence        = "persistence"
)

// FlowError is a booking wizard failure with a stable code the handler
// layer maps to an HTTP status.
type FlowError struct {
	Code    string
	Message string
}

func (e *FlowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewFlowError(code, msg string) error {
	return &FlowError{Code: code, Message: msg}
}

// FlowCode returns the FlowError code carried by err, or "".
func FlowCode(err error) string {
	if fe, ok := err.(*FlowError); ok {
		return fe.Code
	}
	return ""
}

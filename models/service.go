package models

// Service is one bookable clinic service.
type Service struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// The clinic's service catalogue. Fixed, matching the booking flow's
// first wizard step.
var ClinicServices = []Service{
	{ID: "Consultation", Name: "Consultation"},
	{ID: "Dental", Name: "Dental"},
	{ID: "Lab Test", Name: "Lab Test"},
}

// TimeSlots is the fixed set of bookable times per day. Times outside this
// list are never valid selections.
var TimeSlots = []string{"09:00", "10:00", "11:00", "12:00", "14:00", "15:00", "16:00"}

// ValidService reports whether serviceID names a catalogue service.
func ValidService(serviceID string) bool {
	for _, s := range ClinicServices {
		if s.ID == serviceID {
			return true
		}
	}
	return false
}

// ValidTimeSlot reports whether t is a member of the fixed slot list.
func ValidTimeSlot(t string) bool {
	for _, slot := range TimeSlots {
		if slot == t {
			return true
		}
	}
	return false
}

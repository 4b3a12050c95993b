package models

import "time"

// Doctor is the role profile for accounts with the doctor role.
// ServiceIDs lists the service identifiers the doctor can be booked for.
type Doctor struct {
	UID             string    `bson:"uid" json:"id"`
	DisplayName     string    `bson:"display_name" json:"name"`
	Email           string    `bson:"email" json:"email"`
	Specialty       string    `bson:"specialty" json:"specialty"`
	Department      string    `bson:"department" json:"department"`
	ConsultationFee float64   `bson:"consultation_fee" json:"consultationFee"`
	ServiceIDs      []string  `bson:"service_ids" json:"serviceIds"`
	CreatedAt       time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updatedAt"`
}

// OffersService reports whether the doctor's capability set contains serviceID.
func (d Doctor) OffersService(serviceID string) bool {
	for _, id := range d.ServiceIDs {
		if id == serviceID {
			return true
		}
	}
	return false
}

package models

import "time"

// SecurityLog is one audit event (sign-ins, privileged admin actions).
type SecurityLog struct {
	ID        string    `bson:"id" json:"id"`
	Event     string    `bson:"event" json:"event"`
	ActorID   string    `bson:"actor_id" json:"actorId"`
	ActorRole string    `bson:"actor_role,omitempty" json:"actorRole,omitempty"`
	Detail    string    `bson:"detail,omitempty" json:"detail,omitempty"`
	IP        string    `bson:"ip,omitempty" json:"ip,omitempty"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

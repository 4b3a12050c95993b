package triage

import (
	"context"

	"healthverse/models"
)

// ModelClient is the structured-generation collaborator behind the advisor.
type ModelClient interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// TriageService evaluates free-text symptom descriptions and derives a
// care-routing disposition from the model's triage score.
type TriageService interface {
	Evaluate(ctx context.Context, sess models.SessionContext, symptoms string) (*models.TriageAssessment, error)
}

// DefaultTriageService implements TriageService.
type DefaultTriageService struct {
	Model          ModelClient
	EmergencyPhone string
}

func NewDefaultTriageService(model ModelClient, emergencyPhone string) *DefaultTriageService {
	return &DefaultTriageService{
		Model:          model,
		EmergencyPhone: emergencyPhone,
	}
}

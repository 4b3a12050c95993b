package triage

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"healthverse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeModel returns a canned response and records whether it was called.
type fakeModel struct {
	response string
	err      error
	calls    int
}

func (f *fakeModel) GenerateContent(ctx context.Context, prompt string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func newService(model ModelClient) *DefaultTriageService {
	return NewDefaultTriageService(model, "911")
}

func TestEvaluateRejectsShortSymptoms(t *testing.T) {
	tests := []struct {
		name     string
		symptoms string
	}{
		{"empty", ""},
		{"whitespace only", "        \t\n   "},
		{"below minimum", "headache"},
		{"padded below minimum", "   cough   "},
		{"multibyte below minimum", "头疼发热"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			model := &fakeModel{response: `{"preDiagnosis":"x","triageScore":3}`}
			svc := newService(model)

			_, err := svc.Evaluate(context.Background(), models.SessionContext{}, tc.symptoms)

			var ve *ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, MsgSymptomsTooShort, ve.Message)
			assert.Zero(t, model.calls, "model must not be called for invalid input")
		})
	}
}

func TestEvaluateDispositionThreshold(t *testing.T) {
	tests := []struct {
		score       int
		disposition string
	}{
		{1, models.DispositionBookAppointment},
		{6, models.DispositionBookAppointment},
		{7, models.DispositionEmergency},
		{10, models.DispositionEmergency},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("score %d", tc.score), func(t *testing.T) {
			model := &fakeModel{
				response: fmt.Sprintf(`{"preDiagnosis":"possible viral infection","triageScore":%d}`, tc.score),
			}
			svc := newService(model)

			assessment, err := svc.Evaluate(context.Background(), models.SessionContext{},
				"persistent fever and sore throat for three days")
			require.NoError(t, err)

			assert.Equal(t, tc.disposition, assessment.Disposition)
			assert.Equal(t, tc.score, assessment.Result.TriageScore)
			assert.Equal(t, "possible viral infection", assessment.Result.PreDiagnosis)

			if tc.disposition == models.DispositionEmergency {
				assert.Equal(t, "911", assessment.EmergencyPhone)
				assert.Empty(t, assessment.SuggestedService)
			} else {
				assert.Equal(t, "Consultation", assessment.SuggestedService)
				assert.Empty(t, assessment.EmergencyPhone)
			}
		})
	}
}

func TestEvaluateUpstreamUnavailable(t *testing.T) {
	model := &fakeModel{err: errors.New("deadline exceeded")}
	svc := newService(model)

	_, err := svc.Evaluate(context.Background(), models.SessionContext{},
		"sharp chest pain radiating to the left arm")

	var ue *UpstreamUnavailableError
	require.ErrorAs(t, err, &ue)
	assert.ErrorContains(t, err, "deadline exceeded")
}

func TestEvaluateRejectsMalformedModelOutput(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"not JSON", "I think you should see a doctor soon."},
		{"missing preDiagnosis", `{"triageScore":5}`},
		{"blank preDiagnosis", `{"preDiagnosis":"  ","triageScore":5}`},
		{"missing triageScore", `{"preDiagnosis":"migraine"}`},
		{"fractional score", `{"preDiagnosis":"migraine","triageScore":5.5}`},
		{"string score", `{"preDiagnosis":"migraine","triageScore":"5"}`},
		{"score below range", `{"preDiagnosis":"migraine","triageScore":0}`},
		{"score above range", `{"preDiagnosis":"migraine","triageScore":11}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := newService(&fakeModel{response: tc.response})

			_, err := svc.Evaluate(context.Background(), models.SessionContext{},
				"throbbing headache with light sensitivity")

			var fe *UpstreamFormatError
			require.ErrorAs(t, err, &fe)
		})
	}
}

func TestEvaluateCountsCharactersNotBytes(t *testing.T) {
	model := &fakeModel{response: `{"preDiagnosis":"gastroenteritis","triageScore":4}`}
	svc := newService(model)

	// 11 characters but well over 10 bytes either way; must reach the model.
	assessment, err := svc.Evaluate(context.Background(), models.SessionContext{},
		"头疼发热咳嗽乏力三天了")
	require.NoError(t, err)
	assert.Equal(t, models.DispositionBookAppointment, assessment.Disposition)
	assert.Equal(t, 1, model.calls)
}

func TestEvaluateTrimsInputBeforeLengthCheck(t *testing.T) {
	model := &fakeModel{response: `{"preDiagnosis":"tension headache","triageScore":2}`}
	svc := newService(model)

	assessment, err := svc.Evaluate(context.Background(), models.SessionContext{},
		"   dull headache since yesterday   ")
	require.NoError(t, err)
	assert.Equal(t, models.DispositionBookAppointment, assessment.Disposition)
	assert.Equal(t, 1, model.calls)
}

package clinical

import (
	"fmt"
	"testing"

	"healthverse/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memNurseRepo struct {
	nurses map[string]*models.Nurse
}

func newMemNurseRepo(nurses ...*models.Nurse) *memNurseRepo {
	m := &memNurseRepo{nurses: make(map[string]*models.Nurse)}
	for _, n := range nurses {
		m.nurses[n.UID] = n
	}
	return m
}

func (m *memNurseRepo) Create(n *models.Nurse) error {
	m.nurses[n.UID] = n
	return nil
}

func (m *memNurseRepo) GetByUID(uid string) (*models.Nurse, error) {
	n, ok := m.nurses[uid]
	if !ok {
		return nil, fmt.Errorf("nurse %s not found", uid)
	}
	copied := *n
	return &copied, nil
}

func (m *memNurseRepo) GetAll() ([]models.Nurse, error) {
	var out []models.Nurse
	for _, n := range m.nurses {
		out = append(out, *n)
	}
	return out, nil
}

func (m *memNurseRepo) AssignPatient(nurseUID, patientID string) error {
	n, ok := m.nurses[nurseUID]
	if !ok {
		return fmt.Errorf("nurse %s not found", nurseUID)
	}
	for _, existing := range n.AssignedPatients {
		if existing == patientID {
			return nil
		}
	}
	n.AssignedPatients = append(n.AssignedPatients, patientID)
	return nil
}

func (m *memNurseRepo) UpdateSchedule(nurseUID string, schedule []models.ShiftAssignment) error {
	n, ok := m.nurses[nurseUID]
	if !ok {
		return fmt.Errorf("nurse %s not found", nurseUID)
	}
	n.Schedule = schedule
	return nil
}

type memVitalsRepo struct {
	records []models.VitalsRecord
}

func (m *memVitalsRepo) Insert(record *models.VitalsRecord) error {
	m.records = append(m.records, *record)
	return nil
}

func (m *memVitalsRepo) GetByPatient(patientID string) ([]models.VitalsRecord, error) {
	var out []models.VitalsRecord
	for _, r := range m.records {
		if r.PatientID == patientID {
			out = append(out, r)
		}
	}
	return out, nil
}

type memUserDirectory struct {
	users map[string]*models.User
}

func (m *memUserDirectory) Create(u *models.User) error { return nil }
func (m *memUserDirectory) GetByUID(uid string) (*models.User, error) {
	u, ok := m.users[uid]
	if !ok {
		return nil, fmt.Errorf("user %s not found", uid)
	}
	return u, nil
}
func (m *memUserDirectory) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (m *memUserDirectory) GetAll() ([]models.User, error)                { return nil, nil }
func (m *memUserDirectory) Update(u *models.User) error                   { return nil }
func (m *memUserDirectory) SetStatus(uid, status string) error            { return nil }
func (m *memUserDirectory) RecordLogin(uid string) error                  { return nil }

func newTestClinicalService() (*DefaultClinicalService, *memNurseRepo, *memVitalsRepo) {
	nurses := newMemNurseRepo(&models.Nurse{UID: "nurse-1", DisplayName: "Nia Otieno"})
	vitals := &memVitalsRepo{}
	users := &memUserDirectory{users: map[string]*models.User{
		"pat-1": {UID: "pat-1", DisplayName: "Jane Wanjiru", Role: models.RolePatient},
		"doc-1": {UID: "doc-1", DisplayName: "Dr. Achieng", Role: models.RoleDoctor},
	}}
	svc := &DefaultClinicalService{Nurses: nurses, Vitals: vitals, Users: users}
	return svc, nurses, vitals
}

func TestLogVitals(t *testing.T) {
	svc, _, vitals := newTestClinicalService()

	record, err := svc.LogVitals("nurse-1", VitalsInput{
		PatientID:     "pat-1",
		Temperature:   37.8,
		HeartRate:     92,
		BloodPressure: "128/84",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "nurse-1", record.NurseID)
	assert.False(t, record.Timestamp.IsZero())
	require.Len(t, vitals.records, 1)

	history, err := svc.PatientVitals("pat-1")
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestLogVitalsRejectsUnknownPatient(t *testing.T) {
	svc, _, vitals := newTestClinicalService()

	_, err := svc.LogVitals("nurse-1", VitalsInput{PatientID: "ghost"})
	assert.Error(t, err)
	assert.Empty(t, vitals.records)
}

func TestAssignPatient(t *testing.T) {
	svc, nurses, _ := newTestClinicalService()

	require.NoError(t, svc.AssignPatient("nurse-1", "pat-1"))

	// Assigning a doctor as a panel patient is rejected.
	assert.Error(t, svc.AssignPatient("nurse-1", "doc-1"))

	panel, err := svc.Panel("nurse-1")
	require.NoError(t, err)
	require.Len(t, panel.Patients, 1)
	assert.Equal(t, "Jane Wanjiru", panel.Patients[0].DisplayName)

	n, _ := nurses.GetByUID("nurse-1")
	assert.Equal(t, []string{"pat-1"}, n.AssignedPatients)
}

func TestUpdateScheduleValidation(t *testing.T) {
	svc, nurses, _ := newTestClinicalService()

	err := svc.UpdateSchedule("nurse-1", []models.ShiftAssignment{{Day: "Monday"}})
	assert.Error(t, err)

	schedule := []models.ShiftAssignment{{Day: "Monday", Shift: "Night", Ward: "B2"}}
	require.NoError(t, svc.UpdateSchedule("nurse-1", schedule))

	n, _ := nurses.GetByUID("nurse-1")
	assert.Equal(t, schedule, n.Schedule)
}

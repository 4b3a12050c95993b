package user

import (
	"context"
	"fmt"
	"testing"
	"time"

	"healthverse/models"
	"healthverse/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type memUserRepo struct {
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*models.User)}
}

func (m *memUserRepo) Create(u *models.User) error {
	for _, existing := range m.users {
		if existing.Email == u.Email {
			return fmt.Errorf("a user with this email address already exists")
		}
	}
	copied := *u
	m.users[u.UID] = &copied
	return nil
}

func (m *memUserRepo) GetByUID(uid string) (*models.User, error) {
	u, ok := m.users[uid]
	if !ok {
		return nil, fmt.Errorf("user %s not found", uid)
	}
	copied := *u
	return &copied, nil
}

func (m *memUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("user with email %s not found", email)
}

func (m *memUserRepo) GetAll() ([]models.User, error) {
	var out []models.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memUserRepo) Update(u *models.User) error {
	if _, ok := m.users[u.UID]; !ok {
		return fmt.Errorf("user %s not found", u.UID)
	}
	copied := *u
	m.users[u.UID] = &copied
	return nil
}

func (m *memUserRepo) SetStatus(uid, status string) error {
	u, ok := m.users[uid]
	if !ok {
		return fmt.Errorf("user %s not found", uid)
	}
	u.Status = status
	return nil
}

func (m *memUserRepo) RecordLogin(uid string) error {
	u, ok := m.users[uid]
	if !ok {
		return fmt.Errorf("user %s not found", uid)
	}
	now := time.Now()
	u.LastLogin = &now
	return nil
}

type memDoctorRepo struct {
	created []models.Doctor
}

func (m *memDoctorRepo) Create(doc *models.Doctor) error {
	m.created = append(m.created, *doc)
	return nil
}
func (m *memDoctorRepo) GetByUID(uid string) (*models.Doctor, error) { return nil, nil }
func (m *memDoctorRepo) GetAll() ([]models.Doctor, error)            { return nil, nil }
func (m *memDoctorRepo) GetByService(serviceID string) ([]models.Doctor, error) {
	return nil, nil
}
func (m *memDoctorRepo) Update(doc *models.Doctor) error { return nil }

type memNurseRepo struct {
	created []models.Nurse
}

func (m *memNurseRepo) Create(n *models.Nurse) error {
	m.created = append(m.created, *n)
	return nil
}
func (m *memNurseRepo) GetByUID(uid string) (*models.Nurse, error)     { return nil, nil }
func (m *memNurseRepo) GetAll() ([]models.Nurse, error)                { return nil, nil }
func (m *memNurseRepo) AssignPatient(nurseUID, patientID string) error { return nil }
func (m *memNurseRepo) UpdateSchedule(nurseUID string, schedule []models.ShiftAssignment) error {
	return nil
}

type memSetupLinkRepo struct {
	links map[string]*models.SetupLink
}

func newMemSetupLinkRepo() *memSetupLinkRepo {
	return &memSetupLinkRepo{links: make(map[string]*models.SetupLink)}
}

func (m *memSetupLinkRepo) Create(link *models.SetupLink) error {
	copied := *link
	m.links[link.UserID] = &copied
	return nil
}

func (m *memSetupLinkRepo) GetByUserID(userID string) (*models.SetupLink, error) {
	link, ok := m.links[userID]
	if !ok {
		return nil, fmt.Errorf("setup link for %s not found", userID)
	}
	copied := *link
	return &copied, nil
}

func (m *memSetupLinkRepo) GetAll() ([]models.SetupLink, error) {
	var out []models.SetupLink
	for _, l := range m.links {
		out = append(out, *l)
	}
	return out, nil
}

func (m *memSetupLinkRepo) SetStatus(userID, status string) error {
	link, ok := m.links[userID]
	if !ok {
		return fmt.Errorf("setup link for %s not found", userID)
	}
	link.Status = status
	return nil
}

type memAuditRepo struct {
	entries []models.SecurityLog
}

func (m *memAuditRepo) Insert(entry *models.SecurityLog) error {
	m.entries = append(m.entries, *entry)
	return nil
}

func (m *memAuditRepo) Recent(limit int64) ([]models.SecurityLog, error) {
	return m.entries, nil
}

func newTestUserService() (*DefaultUserService, *memUserRepo, *memDoctorRepo, *memNurseRepo, *memSetupLinkRepo, *memAuditRepo) {
	users := newMemUserRepo()
	doctors := &memDoctorRepo{}
	nurses := &memNurseRepo{}
	links := newMemSetupLinkRepo()
	audit := &memAuditRepo{}
	svc := &DefaultUserService{
		Repo:       users,
		Doctors:    doctors,
		Nurses:     nurses,
		SetupLinks: links,
		Audit:      audit,
	}
	return svc, users, doctors, nurses, links, audit
}

func TestCreateUserProvisionsAccountAndSetupLink(t *testing.T) {
	svc, _, doctors, _, _, _ := newTestUserService()

	result, err := svc.CreateUser(CreateUserInput{
		Email:    "  Dana.Kim@Clinic.example  ",
		FullName: "Dana Kim",
		Role:     models.RoleDoctor,
	})
	require.NoError(t, err)

	assert.Equal(t, "dana.kim@clinic.example", result.User.Email)
	assert.Equal(t, models.UserStatusPending, result.User.Status)
	assert.NotEmpty(t, result.User.UID)

	require.Len(t, doctors.created, 1)
	assert.Equal(t, result.User.UID, doctors.created[0].UID)

	assert.Equal(t, models.SetupLinkActive, result.SetupLink.Status)
	assert.NotEmpty(t, result.SetupLink.Token)
	assert.True(t, result.SetupLink.ExpiresAt.After(time.Now()))
}

func TestCreateUserValidation(t *testing.T) {
	tests := []struct {
		name  string
		input CreateUserInput
	}{
		{"bad email", CreateUserInput{Email: "not-an-email", FullName: "Pat Doe", Role: models.RolePatient}},
		{"short name", CreateUserInput{Email: "p@x.example", FullName: "P", Role: models.RolePatient}},
		{"unknown role", CreateUserInput{Email: "p@x.example", FullName: "Pat Doe", Role: "superuser"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, _, _, _, _, _ := newTestUserService()
			_, err := svc.CreateUser(tc.input)
			assert.Error(t, err)
		})
	}
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	svc, _, _, _, _, _ := newTestUserService()

	input := CreateUserInput{Email: "pat@clinic.example", FullName: "Pat Doe", Role: models.RolePatient}
	_, err := svc.CreateUser(input)
	require.NoError(t, err)

	_, err = svc.CreateUser(input)
	assert.ErrorContains(t, err, "already exists")
}

func TestCompleteSetupActivatesAccount(t *testing.T) {
	svc, users, _, _, links, _ := newTestUserService()
	result, err := svc.CreateUser(CreateUserInput{
		Email: "pat@clinic.example", FullName: "Pat Doe", Role: models.RolePatient,
	})
	require.NoError(t, err)

	account, err := svc.CompleteSetup(result.SetupLink.Token, "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, models.UserStatusActive, account.Status)

	stored, err := users.GetByUID(result.User.UID)
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-pass")))

	link, err := links.GetByUserID(result.User.UID)
	require.NoError(t, err)
	assert.Equal(t, models.SetupLinkUsed, link.Status)

	// A consumed link cannot be reused.
	_, err = svc.CompleteSetup(result.SetupLink.Token, "another-pass")
	assert.Error(t, err)
}

func TestCompleteSetupRejectsBadLinks(t *testing.T) {
	svc, _, _, _, links, _ := newTestUserService()
	result, err := svc.CreateUser(CreateUserInput{
		Email: "pat@clinic.example", FullName: "Pat Doe", Role: models.RolePatient,
	})
	require.NoError(t, err)

	t.Run("short password", func(t *testing.T) {
		_, err := svc.CompleteSetup(result.SetupLink.Token, "short")
		assert.Error(t, err)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := svc.CompleteSetup("no-such-token", "s3cret-pass")
		assert.Error(t, err)
	})

	t.Run("expired link", func(t *testing.T) {
		link := links.links[result.User.UID]
		link.ExpiresAt = time.Now().Add(-time.Minute)
		_, err := svc.CompleteSetup(result.SetupLink.Token, "s3cret-pass")
		assert.Error(t, err)
	})
}

func TestAuthenticate(t *testing.T) {
	svc, users, _, _, _, audit := newTestUserService()
	result, err := svc.CreateUser(CreateUserInput{
		Email: "pat@clinic.example", FullName: "Pat Doe", Role: models.RolePatient,
	})
	require.NoError(t, err)
	_, err = svc.CompleteSetup(result.SetupLink.Token, "s3cret-pass")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		resp, err := svc.Authenticate("pat@clinic.example", "s3cret-pass", "10.0.0.5")
		require.NoError(t, err)
		assert.Equal(t, result.User.UID, resp.UID)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, models.RolePatient, resp.Role)

		stored, _ := users.GetByUID(result.User.UID)
		require.NotNil(t, stored.LastLogin)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate("pat@clinic.example", "wrong-pass", "10.0.0.5")
		assert.ErrorContains(t, err, "invalid email or password")
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Authenticate("ghost@clinic.example", "s3cret-pass", "10.0.0.5")
		assert.ErrorContains(t, err, "invalid email or password")
	})

	t.Run("deactivated account", func(t *testing.T) {
		require.NoError(t, svc.DeactivateUser(result.User.UID))
		_, err := svc.Authenticate("pat@clinic.example", "s3cret-pass", "10.0.0.5")
		assert.ErrorContains(t, err, "deactivated")
	})

	// Every attempt above left an audit trail.
	assert.NotEmpty(t, audit.entries)
}

func TestRevokeToken(t *testing.T) {
	svc, _, _, _, _, audit := newTestUserService()
	mr := miniredis.RunT(t)
	svc.AuthCache = redis.NewClient(&redis.Options{Addr: mr.Addr()})

	token, err := utils.GenerateToken("pat-1", "pat@clinic.example", models.RolePatient, time.Hour)
	require.NoError(t, err)

	require.NoError(t, svc.RevokeToken(token, "10.0.0.5"))

	key := utils.RevokedTokenPrefix + utils.HashToken(token)
	ctx := context.Background()
	n, err := svc.AuthCache.Exists(ctx, key).Result()
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	ttl, err := svc.AuthCache.TTL(ctx, key).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Hour)

	require.NotEmpty(t, audit.entries)
	assert.Equal(t, "logout", audit.entries[len(audit.entries)-1].Event)

	t.Run("garbage token", func(t *testing.T) {
		assert.Error(t, svc.RevokeToken("not-a-jwt", "10.0.0.5"))
	})
}

func TestRevokeSetupLink(t *testing.T) {
	svc, _, _, _, links, _ := newTestUserService()
	result, err := svc.CreateUser(CreateUserInput{
		Email: "nia@clinic.example", FullName: "Nia Otieno", Role: models.RoleNurse,
	})
	require.NoError(t, err)

	require.NoError(t, svc.RevokeSetupLink(result.User.UID))
	link, err := links.GetByUserID(result.User.UID)
	require.NoError(t, err)
	assert.Equal(t, models.SetupLinkRevoked, link.Status)

	_, err = svc.CompleteSetup(result.SetupLink.Token, "s3cret-pass")
	assert.Error(t, err)
}

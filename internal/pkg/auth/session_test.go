package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studentdesk/internal/pkg/apperrors"
)

func newTestSessions() *SessionService {
	return NewSessionService(SessionConfig{Secret: "test-secret", TTL: time.Hour})
}

func TestSessionService_RoundTrip(t *testing.T) {
	sessions := newTestSessions()
	identity := NewIdentity(true, &StudentIdentity{ID: "s1", Name: "Asha", RollNo: "21CS001"})

	token, err := sessions.Issue(identity)
	require.NoError(t, err)

	parsed, err := sessions.Parse(token)
	require.NoError(t, err)
	assert.True(t, parsed.IsAdmin())
	student, ok := parsed.Student()
	require.True(t, ok)
	assert.Equal(t, StudentIdentity{ID: "s1", Name: "Asha", RollNo: "21CS001"}, student)
}

func TestSessionService_RejectsTamperedToken(t *testing.T) {
	sessions := newTestSessions()
	token, err := sessions.Issue(NewIdentity(false, &StudentIdentity{ID: "s1"}))
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

	_, err = sessions.Parse(tampered)
	assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)

	other := NewSessionService(SessionConfig{Secret: "other-secret", TTL: time.Hour})
	_, err = other.Parse(token)
	assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)
}

func TestSessionService_RejectsExpiredToken(t *testing.T) {
	sessions := newTestSessions()
	issuedAt := time.Now().Add(-2 * time.Hour)
	sessions.now = func() time.Time { return issuedAt }

	token, err := sessions.Issue(NewIdentity(true, nil))
	require.NoError(t, err)

	sessions.now = time.Now
	_, err = sessions.Parse(token)
	assert.ErrorIs(t, err, apperrors.ErrSessionInvalid)
}

func TestIdentity_IsImmutable(t *testing.T) {
	student := &StudentIdentity{ID: "s1", Name: "Asha"}
	identity := NewIdentity(false, student)
	student.Name = "changed"

	got, ok := identity.Student()
	require.True(t, ok)
	assert.Equal(t, "Asha", got.Name)

	admin := identity.WithAdmin(true)
	assert.False(t, identity.IsAdmin())
	assert.True(t, admin.IsAdmin())

	loggedOut := admin.WithStudent(nil)
	_, ok = loggedOut.Student()
	assert.False(t, ok)
	assert.True(t, loggedOut.IsAdmin())
	assert.True(t, loggedOut.WithAdmin(false).IsAnonymous())
	assert.True(t, Anonymous().IsAnonymous())
}

func TestPasswordsAndAdminCredentials(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.True(t, CheckPassword(hash, "s3cret"))
	assert.False(t, CheckPassword(hash, "wrong"))

	admin := AdminCredentials{Username: "admin", Password: "admin123"}
	assert.True(t, admin.Matches("admin", "admin123"))
	assert.False(t, admin.Matches("admin", "admin"))
	assert.False(t, admin.Matches("root", "admin123"))
}

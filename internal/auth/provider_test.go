package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaishnav/edutech_backend_v1/internal/models"
)

const demoUsers = "student:student123:student,admin:admin123:admin,john.doe:password:student,jane.smith:password:student"

func newProvider(t *testing.T) *StaticProvider {
	t.Helper()
	accounts, err := ParseAccounts(demoUsers)
	require.NoError(t, err)
	p, err := NewStaticProvider(accounts, 4)
	require.NoError(t, err)
	return p
}

func TestAuthenticate(t *testing.T) {
	p := newProvider(t)

	u, err := p.Authenticate("admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, u.Role)

	u, err = p.Authenticate("john.doe", "password")
	require.NoError(t, err)
	assert.Equal(t, models.RoleStudent, u.Role)
	assert.Equal(t, "John Doe", u.FullName)
}

func TestAuthenticateRejects(t *testing.T) {
	p := newProvider(t)
	cases := []struct{ user, pass string }{
		{"nobody", "student123"},
		{"student", "admin123"},
		{"Student", "student123"},
		{"", ""},
		{"admin", ""},
	}
	for _, c := range cases {
		_, err := p.Authenticate(c.user, c.pass)
		assert.ErrorIs(t, err, ErrInvalidCredentials, "%s/%s", c.user, c.pass)
	}
	assert.Equal(t, "invalid username or password", ErrInvalidCredentials.Error())
}

func TestParseAccounts(t *testing.T) {
	accounts, err := ParseAccounts(" a:p:ADMIN , ,b:x:y:student")
	require.Error(t, err)
	assert.Nil(t, accounts)

	// the role is everything after the second colon
	_, err = ParseAccounts("a:p:ADMIN, b:pa:ss:student")
	require.Error(t, err)

	accounts, err = ParseAccounts("a:p:ADMIN,b:q:student")
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, models.RoleAdmin, accounts[0].Role)

	_, err = ParseAccounts("")
	assert.Error(t, err)
	_, err = ParseAccounts("a:p:teacher")
	assert.Error(t, err)
}

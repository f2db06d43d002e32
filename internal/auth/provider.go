package auth

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/vaishnav/edutech_backend_v1/internal/models"
	"github.com/vaishnav/edutech_backend_v1/internal/utils"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type Credentials struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Provider resolves credentials to an identity.
type Provider interface {
	Authenticate(username, password string) (models.User, error)
}

type account struct {
	user models.User
	hash string
}

// StaticProvider checks against a fixed username table. Passwords are kept only as
// bcrypt hashes.
type StaticProvider struct {
	accounts map[string]account
}

type Account struct {
	Username string
	Password string
	Role     models.Role
	FullName string
}

func NewStaticProvider(accounts []Account, cost int) (*StaticProvider, error) {
	p := &StaticProvider{accounts: make(map[string]account, len(accounts))}
	for _, a := range accounts {
		if !a.Role.Valid() {
			return nil, fmt.Errorf("account %q: invalid role %q", a.Username, a.Role)
		}
		hash, err := utils.HashPassword(a.Password, cost)
		if err != nil {
			return nil, errors.Wrapf(err, "hash password for %q", a.Username)
		}
		name := a.FullName
		if name == "" {
			name = displayName(a.Username)
		}
		p.accounts[a.Username] = account{
			user: models.User{Username: a.Username, FullName: name, Role: a.Role},
			hash: hash,
		}
	}
	return p, nil
}

func (p *StaticProvider) Authenticate(username, password string) (models.User, error) {
	acc, ok := p.accounts[username]
	if !ok || !utils.CheckPassword(acc.hash, password) {
		return models.User{}, ErrInvalidCredentials
	}
	return acc.user, nil
}

// ParseAccounts reads "username:password:role" triples separated by commas.
func ParseAccounts(spec string) ([]Account, error) {
	var out []Account
	for _, raw := range strings.Split(spec, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		parts := strings.SplitN(raw, ":", 3)
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("invalid account entry %q", raw)
		}
		role := models.Role(strings.ToLower(strings.TrimSpace(parts[2])))
		if !role.Valid() {
			return nil, fmt.Errorf("invalid role in account entry %q", raw)
		}
		out = append(out, Account{Username: strings.TrimSpace(parts[0]), Password: parts[1], Role: role})
	}
	if len(out) == 0 {
		return nil, errors.New("no accounts configured")
	}
	return out, nil
}

// displayName turns "john.doe" into "John Doe".
func displayName(username string) string {
	fields := strings.FieldsFunc(username, func(r rune) bool { return r == '.' || r == '_' || r == '-' })
	for i, f := range fields {
		fields[i] = strings.ToUpper(f[:1]) + f[1:]
	}
	return strings.Join(fields, " ")
}

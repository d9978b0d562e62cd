package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// CredentialVerifier checks a username/password pair and returns the role of
// the account.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (role string, err error)
}

type Account struct {
	Username string
	Role     string
	PassHash string // bcrypt
}

// AccountVerifier verifies against a fixed set of configured accounts.
type AccountVerifier struct {
	accounts map[string]Account
}

func NewAccountVerifier(accounts ...Account) *AccountVerifier {
	m := make(map[string]Account, len(accounts))
	for _, a := range accounts {
		if a.Username == "" || a.PassHash == "" {
			continue
		}
		m[a.Username] = a
	}
	return &AccountVerifier{accounts: m}
}

func (v *AccountVerifier) Verify(_ context.Context, username, password string) (string, error) {
	a, ok := v.accounts[strings.TrimSpace(username)]
	if !ok || password == "" {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PassHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return a.Role, nil
}

// ParseAccounts reads "user:role:bcrypt" entries separated by commas.
func ParseAccounts(list []string) ([]Account, error) {
	out := make([]Account, 0, len(list))
	for _, item := range list {
		parts := strings.SplitN(item, ":", 3)
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
			return nil, fmt.Errorf("account %q: want user:role:hash", item)
		}
		if _, err := bcrypt.Cost([]byte(parts[2])); err != nil {
			return nil, fmt.Errorf("account %q: %w", parts[0], err)
		}
		out = append(out, Account{Username: parts[0], Role: parts[1], PassHash: parts[2]})
	}
	return out, nil
}

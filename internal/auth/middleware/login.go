package auth

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/m4tt143/Prog2-9302-AY225-TANCHINGCO/internal/rbac"
)

// LoginHook runs after a successful login.
type LoginHook func(ctx context.Context, username, role string, at time.Time)

type loginResponse struct {
	AccessToken string    `json:"access_token"`
	Username    string    `json:"username"`
	Role        string    `json:"role"`
	LoginTime   time.Time `json:"login_time"`
	Permissions []string  `json:"permissions"`
}

// POST /auth/login  { "username": "...", "password": "..." }
func LoginHandler(a *AuthService, v CredentialVerifier, hooks ...LoginHook) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		req.Username = strings.TrimSpace(req.Username)
		role, err := v.Verify(r.Context(), req.Username, req.Password)
		if err != nil {
			if !errors.Is(err, ErrInvalidCredentials) {
				log.Printf("login %q: %v", req.Username, err)
			}
			http.Error(w, ErrInvalidCredentials.Error(), http.StatusUnauthorized)
			return
		}
		tok, claims, err := a.issue(req.Username, role)
		if err != nil {
			http.Error(w, "issue token", http.StatusInternalServerError)
			return
		}
		for _, h := range hooks {
			h(r.Context(), req.Username, role, claims.LoginTime())
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(loginResponse{
			AccessToken: tok,
			Username:    req.Username,
			Role:        role,
			LoginTime:   claims.LoginTime(),
			Permissions: rbac.Granted(role),
		})
	}
}

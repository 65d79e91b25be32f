// Copyright (c) 2025-2026 ProfNITT Dev Team
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/alexedwards/scs/v2"

	"github.com/profnitt/clubadmin/internal/auth"
	"github.com/profnitt/clubadmin/internal/middleware"
	"github.com/profnitt/clubadmin/internal/session"
	"github.com/profnitt/clubadmin/internal/store"
)

// AuthHandler handles signup, login, logout, and the current-admin
// lookup.
type AuthHandler struct {
	queries         *store.Queries
	sessionManager  *scs.SessionManager
	loginProtection *middleware.LoginProtection
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *sql.DB, sm *scs.SessionManager, lp *middleware.LoginProtection) *AuthHandler {
	return &AuthHandler{
		queries:         store.New(db),
		sessionManager:  sm,
		loginProtection: lp,
	}
}

// SignupRequest is the request body for creating an admin account.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the request body for logging in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)

	details := map[string]string{}
	if req.Name == "" {
		details["name"] = "name is required"
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		details["email"] = "a valid email is required"
	}
	if len(req.Password) < 8 {
		details["password"] = "password must be at least 8 characters"
	}
	if len(details) > 0 {
		WriteBadRequest(w, "Validation failed", details)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("hashing password", "error", err)
		WriteInternalError(w, "Something went wrong")
		return
	}

	admin, err := h.queries.CreateAdmin(r.Context(), store.CreateAdminParams{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			WriteConflict(w, "An account with this email already exists")
			return
		}
		writeEntityError(w, err)
		return
	}

	slog.Info("admin account created", "email", admin.Email)
	WriteCreated(w, admin)
}

// Login handles POST /api/auth/login. The route sits behind the IP
// rate limiter; account lockout is enforced here.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		WriteBadRequest(w, "Email and password are required", nil)
		return
	}

	if h.loginProtection != nil {
		if locked, remaining := h.loginProtection.IsAccountLocked(email); locked {
			slog.Warn("login attempt on locked account", "email", email)
			WriteError(w, http.StatusTooManyRequests, "account_locked",
				"Account temporarily locked. Try again in "+remaining.Round(1e9).String(), nil)
			return
		}
	}

	admin, err := h.queries.GetAdminByEmail(r.Context(), email)
	if err != nil {
		h.recordFailure(email)
		WriteUnauthorized(w, "Invalid email or password")
		return
	}

	ok, err := auth.CheckPassword(req.Password, admin.PasswordHash)
	if err != nil || !ok {
		h.recordFailure(email)
		slog.Warn("failed login", "email", email)
		WriteUnauthorized(w, "Invalid email or password")
		return
	}

	if h.loginProtection != nil {
		h.loginProtection.RecordSuccessfulLogin(email)
	}

	// Fresh token on privilege change.
	if err := h.sessionManager.RenewToken(r.Context()); err != nil {
		slog.Error("renewing session token", "error", err)
		WriteInternalError(w, "Something went wrong")
		return
	}
	h.sessionManager.Put(r.Context(), session.KeyAdminID, admin.ID)
	h.sessionManager.Put(r.Context(), session.KeyAdminName, admin.Name)

	// Transparent parameter upgrade for old hashes.
	if auth.NeedsRehash(admin.PasswordHash) {
		if newHash, err := auth.HashPassword(req.Password); err == nil {
			if err := h.queries.UpdateAdminPassword(r.Context(), admin.ID, newHash); err != nil {
				slog.Error("upgrading password hash", "error", err)
			}
		}
	}

	if err := h.queries.UpdateAdminLastLogin(r.Context(), admin.ID); err != nil {
		slog.Error("stamping last login", "error", err)
	}

	slog.Info("admin logged in", "email", admin.Email)
	WriteSuccess(w, admin)
}

func (h *AuthHandler) recordFailure(email string) {
	if h.loginProtection == nil {
		return
	}
	if locked, duration := h.loginProtection.RecordFailedAttempt(email); locked {
		slog.Warn("account locked", "email", email, "duration", duration)
	}
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionManager.Destroy(r.Context()); err != nil {
		slog.Error("destroying session", "error", err)
		WriteInternalError(w, "Something went wrong")
		return
	}
	WriteSuccess(w, map[string]string{"status": "logged out"})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	admin := middleware.GetAdmin(r)
	if admin == nil {
		WriteUnauthorized(w, "Authentication required")
		return
	}
	WriteSuccess(w, admin)
}

package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/vehicle-ledger/internal"
	"github.com/frahmantamala/vehicle-ledger/internal/transport"
	"github.com/frahmantamala/vehicle-ledger/pkg/logger"
)

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (*Session, error)
	ValidateSession(tokenString string) bool
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.Service.Authenticate(dto)
	if err != nil {
		h.Logger.Error("authentication failed", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    session.Token,
		Path:     "/",
		MaxAge:   int(session.MaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"authenticated": true,
		"expiresAt":     session.ExpiresAt,
	})
}

// Logout clears the session cookie. The token itself stays valid until its
// natural expiry: there is no server-side revocation list, which is a
// documented tradeoff of the stateless session design.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.WriteHeader(http.StatusNoContent)
}

// SessionMiddleware guards every ledger route: requests without a valid
// sessionId cookie are rejected before reaching any service.
func (h *Handler) SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			h.Logger.Warn("session middleware: missing session cookie", "path", r.URL.Path)
			h.HandleServiceError(w, internal.ErrInvalidSession)
			return
		}

		if !h.Service.ValidateSession(cookie.Value) {
			h.Logger.Warn("session middleware: invalid or expired session", "path", r.URL.Path)
			h.HandleServiceError(w, internal.ErrInvalidSession)
			return
		}

		next.ServeHTTP(w, r)
	})
}

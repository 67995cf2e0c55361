package auth

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/showroom/pkg/decode"
	"github.com/JaimeStill/showroom/pkg/handlers"
	"github.com/JaimeStill/showroom/pkg/routes"
)

// Handler serves the /auth route group.
type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger,
	}
}

func (h *Handler) Routes() routes.Group {
	authenticated := []func(http.Handler) http.Handler{Authenticate(h.sys, h.logger)}

	return routes.Group{
		Prefix:      "/auth",
		Tags:        []string{"Auth"},
		Description: "Account registration and session tokens",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/register", Handler: h.Register, OpenAPI: Spec.Register},
			{Method: "POST", Pattern: "/login", Handler: h.Login, OpenAPI: Spec.Login},
			{Method: "GET", Pattern: "/me", Handler: h.Me, OpenAPI: Spec.Me, Middleware: authenticated},
			{Method: "POST", Pattern: "/logout", Handler: h.Logout, OpenAPI: Spec.Logout, Middleware: authenticated},
		},
		Schemas: Spec.Schemas(),
	}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	cmd, err := decode.Request[RegisterCommand](r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	session, err := h.sys.Register(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, session)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	cmd, err := decode.Request[LoginCommand](r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	session, err := h.sys.Login(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, session)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r.Context())
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, ErrUnauthorized)
		return
	}

	id, err := claims.UserID()
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, ErrUnauthorized)
		return
	}

	user, err := h.sys.Find(r.Context(), id)
	if err != nil {
		status := MapHTTPStatus(err)
		if status == http.StatusNotFound {
			// The account was removed after the token was issued.
			status, err = http.StatusUnauthorized, ErrUnauthorized
		}
		handlers.RespondError(w, h.logger, status, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, user)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFrom(r.Context())
	if !ok {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, ErrUnauthorized)
		return
	}

	if err := h.sys.Logout(r.Context(), claims); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package inquiries

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/JaimeStill/showroom/pkg/decode"
	"github.com/JaimeStill/showroom/pkg/handlers"
	"github.com/JaimeStill/showroom/pkg/pagination"
	"github.com/JaimeStill/showroom/pkg/routes"
)

// Handler serves the /inquiries route group. Submission is public;
// every other route is wrapped in the admin middleware.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
	admin      []func(http.Handler) http.Handler
}

func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config, admin ...func(http.Handler) http.Handler) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger,
		pagination: pagination,
		admin:      admin,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/inquiries",
		Tags:        []string{"Inquiries"},
		Description: "Contact form submissions",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Submit, OpenAPI: Spec.Submit},
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List, Middleware: h.admin},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: Spec.Find, Middleware: h.admin},
			{Method: "PUT", Pattern: "/{id}/status", Handler: h.UpdateStatus, OpenAPI: Spec.UpdateStatus, Middleware: h.admin},
			{Method: "DELETE", Pattern: "/{id}", Handler: h.Delete, OpenAPI: Spec.Delete, Middleware: h.admin},
		},
		Schemas: Spec.Schemas(),
	}
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	cmd, err := decode.Request[CreateCommand](r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Submit(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	cmd, err := decode.Request[UpdateStatusCommand](r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	result, err := h.sys.UpdateStatus(r.Context(), id, cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.Delete(r.Context(), id); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

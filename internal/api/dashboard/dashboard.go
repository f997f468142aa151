package dashboard

import (
	"errors"
	"log"
	"net/http"

	"student_portal_backend/internal/config"
	"student_portal_backend/internal/converter"
	"student_portal_backend/internal/model"
	"student_portal_backend/internal/service"
	"student_portal_backend/pkg/resp"
	"student_portal_backend/pkg/token"
)

const (
	sessionCookieName = "token"
	loginPath         = "/login"
)

type HandlerDeps struct {
	Serv   service.DashboardService
	JWTCfg config.JWTConfig
}

type Handler struct {
	serv   service.DashboardService
	jwtCfg config.JWTConfig
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:   deps.Serv,
		jwtCfg: deps.JWTCfg,
	}
}

// Overview serves the dashboard view model. The token is re-verified
// here even though the session gate already checks page routes; the
// handler must stay safe when mounted without the gate.
func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(sessionCookieName)
	if err != nil || c.Value == "" {
		http.Redirect(w, r, loginPath, http.StatusSeeOther)
		return
	}

	claims := token.Verify(c.Value, h.jwtCfg.SecretKey())
	if claims == nil {
		http.Redirect(w, r, loginPath, http.StatusSeeOther)
		return
	}

	overview, err := h.serv.Overview(r.Context(), claims.Email)
	if err != nil {
		// Valid token but the account is gone: back to login.
		if errors.Is(err, model.ErrStudentNotFound) {
			http.Redirect(w, r, loginPath, http.StatusSeeOther)
			return
		}
		log.Printf("dashboard error: %v", err)
		resp.WriteErrorResponse(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToOverviewResponse(overview))
}

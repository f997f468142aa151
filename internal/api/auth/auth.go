package auth

import (
	"errors"
	"log"
	"net/http"

	dto "student_portal_backend/internal/api/dto/auth"
	"student_portal_backend/internal/config"
	"student_portal_backend/internal/converter"
	"student_portal_backend/internal/model"
	"student_portal_backend/internal/service"
	"student_portal_backend/pkg/req"
	"student_portal_backend/pkg/resp"
)

const sessionCookieName = "token"

type HandlerDeps struct {
	Serv   service.AuthService
	AppCfg config.AppConfig
}

type Handler struct {
	serv   service.AuthService
	appCfg config.AppConfig
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		serv:   deps.Serv,
		appCfg: deps.AppCfg,
	}
}

// Register creates the account, opens a session and sets the token cookie
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.RegisterRequest](r.Body)
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	student, sessionToken, err := h.serv.Register(
		r.Context(),
		converter.RegisterRequestToRegistration(&requestBody),
	)
	if err != nil {
		h.writeRegisterError(w, err)
		return
	}

	h.setSessionCookie(w, sessionToken)

	resp.WriteJSONResponse(w, http.StatusCreated, dto.RegisterResponse{
		Success: true,
		User:    converter.ToUserResponse(*student),
	})
}

// Login verifies credentials and sets the token cookie
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	requestBody, err := req.Decode[dto.LoginRequest](r.Body)
	if err != nil {
		resp.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}

	student, sessionToken, err := h.serv.Login(r.Context(), requestBody.Email, requestBody.Password)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			resp.WriteErrorResponse(w, http.StatusUnauthorized, err.Error())
			return
		}
		log.Printf("login error: %v", err)
		resp.WriteErrorResponse(w, http.StatusInternalServerError, "internal server error")
		return
	}

	h.setSessionCookie(w, sessionToken)

	resp.WriteJSONResponse(w, http.StatusOK, dto.LoginResponse{
		Success: true,
		User:    converter.ToUserResponse(*student),
	})
}

// Logout clears the token cookie. Succeeds whether or not a session existed
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)

	resp.WriteJSONResponse(w, http.StatusOK, dto.LogoutResponse{
		Success: true,
		Message: "Logged out successfully",
	})
}

func (h *Handler) writeRegisterError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrMissingFields),
		errors.Is(err, model.ErrInvalidEmail),
		errors.Is(err, model.ErrWeakPassword),
		errors.Is(err, model.ErrInvalidYear):
		resp.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrDuplicateEmail):
		resp.WriteErrorResponse(w, http.StatusConflict, err.Error())
	default:
		log.Printf("register error: %v", err)
		resp.WriteErrorResponse(w, http.StatusInternalServerError, "internal server error")
	}
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, sessionToken string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.appCfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   7 * 24 * 60 * 60, // 7 days, matches the token expiry
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.appCfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

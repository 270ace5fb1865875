package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"

	"telegram-auth/internal/dto/request"
	"telegram-auth/internal/dto/response"
	"telegram-auth/internal/usecase"
	"telegram-auth/pkg/utils"

	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// CheckName handles POST /check-name
func (h *UserHandler) CheckName(w http.ResponseWriter, r *http.Request) {
	var req request.CheckNameRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "name required")
		return
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		utils.ResponseBadRequest(w, "name required")
		return
	}

	free, err := h.service.CheckName(r.Context(), req.Name)
	if err != nil {
		h.log.Error("check name failed", zap.Error(err))
		utils.ResponseInternalError(w, "Server xatosi")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.CheckNameResponse{OK: free})
}

// SetProfile handles POST /set-profile
func (h *UserHandler) SetProfile(w http.ResponseWriter, r *http.Request) {
	var req request.SetProfileRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "user_id, name va password kerak")
		return
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		utils.ResponseBadRequest(w, "user_id, name va password kerak")
		return
	}

	user, err := h.service.SetProfile(r.Context(), req.UserID.String(), req.Name, req.Password)
	switch {
	case err == nil:
		utils.ResponseJSON(w, http.StatusOK, response.ProfileResponse{Success: true, User: user})

	case errors.Is(err, usecase.ErrPasswordTooShort):
		utils.ResponseBadRequest(w, "Parol kamida 8 belgidan iborat bo‘lishi kerak")

	case errors.Is(err, usecase.ErrNameTaken):
		utils.ResponseBadRequest(w, "Bu ism band")

	default:
		h.log.Error("set profile failed", zap.Error(err))
		utils.ResponseInternalError(w, "Server xatosi")
	}
}

// Login handles POST /login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "name va password kerak")
		return
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		utils.ResponseBadRequest(w, "name va password kerak")
		return
	}

	user, err := h.service.Login(r.Context(), req.Name, req.Password)
	switch {
	case err == nil:
		utils.ResponseJSON(w, http.StatusOK, response.ProfileResponse{Success: true, User: user})

	case errors.Is(err, usecase.ErrUserNotFound):
		utils.ResponseBadRequest(w, "Foydalanuvchi topilmadi")

	case errors.Is(err, usecase.ErrInvalidCredentials):
		utils.ResponseBadRequest(w, "Parol xato")

	default:
		h.log.Error("login failed", zap.Error(err))
		utils.ResponseInternalError(w, "Server xatosi")
	}
}

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

type OTPHandler struct {
	service usecase.OTPService
	log     *zap.Logger
}

func NewOTPHandler(service usecase.OTPService, log *zap.Logger) *OTPHandler {
	return &OTPHandler{
		service: service,
		log:     log,
	}
}

// SendCode handles POST /send-code
func (h *OTPHandler) SendCode(w http.ResponseWriter, r *http.Request) {
	var req request.SendCodeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "user_id required")
		return
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		utils.ResponseBadRequest(w, "user_id required")
		return
	}

	if err := h.service.SendCode(r.Context(), req.UserID.String()); err != nil {
		// the code may already be stored; the caller just retries
		h.log.Warn("send code failed", zap.Error(err))
		utils.ResponseInternalError(w, "Kod yuborilmadi")
		return
	}

	utils.ResponseJSON(w, http.StatusOK, response.SendCodeResponse{
		Success: true,
		Message: "Kod yuborildi",
	})
}

// VerifyCode handles POST /verify-code
func (h *OTPHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	var req request.VerifyCodeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "user_id va code kerak")
		return
	}
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		utils.ResponseBadRequest(w, "user_id va code kerak")
		return
	}

	err := h.service.VerifyCode(r.Context(), req.UserID.String(), req.Code)
	switch {
	case err == nil:
		utils.ResponseJSON(w, http.StatusOK, response.VerifyCodeResponse{Success: true})

	case errors.Is(err, usecase.ErrInvalidCode):
		utils.ResponseBadRequest(w, "Kod noto'g'ri yoki yo'q")

	case errors.Is(err, usecase.ErrExpiredCode):
		utils.ResponseBadRequest(w, "Kod muddati o'tgan")

	default:
		h.log.Error("verify code failed", zap.Error(err))
		utils.ResponseInternalError(w, "Server xatosi")
	}
}

package wire

import (
	"net/http"

	"telegram-auth/internal/adaptor"
	"telegram-auth/internal/data/repository"
	"telegram-auth/internal/usecase"
	"telegram-auth/pkg/middleware"
	"telegram-auth/pkg/telegram"
	"telegram-auth/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(repo *repository.Repository, sender telegram.Sender, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, sender, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(handler *adaptor.Handler, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Routes live at the root; paths are fixed for client compatibility
	r.Post("/send-code", handler.OTP.SendCode)
	r.Post("/verify-code", handler.OTP.VerifyCode)
	r.Post("/check-name", handler.User.CheckName)
	r.Post("/set-profile", handler.User.SetProfile)
	r.Post("/login", handler.User.Login)

	// Health check endpoint
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Auth backend running!"))
	})

	return r
}

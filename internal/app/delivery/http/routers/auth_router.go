package routers

import (
	"dermref-service/internal/app/delivery/http/middlewares"
	"dermref-service/internal/app/services/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, mw *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/send-otp", authController.SendOtp)
	router.Post("/verify-otp", authController.VerifyOtp)
	router.Post("/login", authController.Login)
	router.With(mw.Authenticate).Post("/change-password", authController.ChangePassword)
	router.Post("/reset-password-token", authController.ForgotPassword)
	router.Post("/reset-password", authController.ResetPassword)
}

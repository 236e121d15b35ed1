package wire

import (
	"travel-booking/internal/adaptor"
	"travel-booking/internal/data/repository"
	"travel-booking/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// POST /api/admin/login - Operator login (public)
	r.Post("/api/admin/login", authHandler.Login)

	// POST /api/admin/logout - Revoke the current session
	r.Group(func(r chi.Router) {
		r.Use(middleware.OperatorSession(repo.Session, log))

		// GET /api/admin/me - Current operator profile
		r.Get("/api/admin/me", authHandler.Profile)

		r.Post("/api/admin/logout", authHandler.Logout)
	})
}

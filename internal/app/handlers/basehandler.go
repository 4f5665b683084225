package handlers

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/devkekops/starshop/internal/app/service"
	"github.com/devkekops/starshop/internal/app/storage"
)

type BaseHandler struct {
	*chi.Mux
	repo       storage.Repository
	submission *service.SubmissionService
}

func NewBaseHandler(repo storage.Repository, submission *service.SubmissionService) *BaseHandler {
	bh := &BaseHandler{
		Mux:        chi.NewMux(),
		repo:       repo,
		submission: submission,
	}

	bh.Use(middleware.RequestID)
	bh.Use(middleware.RealIP)
	bh.Use(middleware.Logger)
	bh.Use(middleware.Recoverer)

	bh.Use(middleware.Compress(5))
	bh.Use(gzipHandle)

	bh.Route("/api/orders", func(r chi.Router) {
		r.Post("/", bh.createOrder())
		r.Get("/", bh.getOrders())
	})

	return bh
}

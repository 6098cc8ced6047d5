package controllers

import (
	"net/http"

	"github.com/orderbuddy/orderbuddy-backend/api/responses"
	"github.com/orderbuddy/orderbuddy-backend/pkg/config"
)

func Health(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-OrderBuddy-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{
			"status":  "healthy",
			"message": "OrderBuddy API is running",
		})
	}
}

package controllers

import (
	"net/http"

	"github.com/orderbuddy/orderbuddy-backend/api/responses"
	"github.com/orderbuddy/orderbuddy-backend/internal/locations"
)

// Locations returns the supported district, taluk, and village reference data.
func Locations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"locations": locations.Districts})
	}
}

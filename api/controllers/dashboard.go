package controllers

import (
	"net/http"

	"github.com/orderbuddy/orderbuddy-backend/api/responses"
	dashboardsvc "github.com/orderbuddy/orderbuddy-backend/internal/dashboard"
	pkgerrors "github.com/orderbuddy/orderbuddy-backend/pkg/errors"
	"github.com/orderbuddy/orderbuddy-backend/pkg/logger"
)

// DashboardStats returns role-specific activity counters for the caller.
func DashboardStats(svc dashboardsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "dashboard service unavailable"))
			return
		}

		userID, role, err := actorFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		stats, err := svc.GetStats(r.Context(), userID, role)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, stats)
	}
}

package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/orderbuddy/orderbuddy-backend/api/middleware"
	"github.com/orderbuddy/orderbuddy-backend/api/responses"
	"github.com/orderbuddy/orderbuddy-backend/api/validators"
	shopsvc "github.com/orderbuddy/orderbuddy-backend/internal/shops"
	"github.com/orderbuddy/orderbuddy-backend/pkg/enums"
	pkgerrors "github.com/orderbuddy/orderbuddy-backend/pkg/errors"
	"github.com/orderbuddy/orderbuddy-backend/pkg/logger"
)

// CreateShop handles shop creation for shop owners.
func CreateShop(svc shopsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}

		ownerID, role, err := actorFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload shopsvc.CreateShopInput
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		shop, err := svc.CreateShop(r.Context(), ownerID, role, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, shop)
	}
}

// ListShops returns the public shop directory, optionally narrowed by location.
func ListShops(svc shopsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}

		filter := shopsvc.ListShopsFilter{
			District:    strings.TrimSpace(r.URL.Query().Get("district")),
			Taluk:       strings.TrimSpace(r.URL.Query().Get("taluk")),
			VillageCity: strings.TrimSpace(r.URL.Query().Get("village_city")),
		}

		shops, err := svc.ListShops(r.Context(), filter)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, shops)
	}
}

// ListMyShops returns the shops owned by the authenticated shop owner.
func ListMyShops(svc shopsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "shop service unavailable"))
			return
		}

		ownerID, role, err := actorFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		shops, err := svc.ListMyShops(r.Context(), ownerID, role)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, shops)
	}
}

func actorFromRequest(r *http.Request) (uuid.UUID, enums.UserRole, error) {
	userID := middleware.UserIDFromContext(r.Context())
	if userID == "" {
		return uuid.Nil, "", pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing")
	}
	uid, err := uuid.Parse(userID)
	if err != nil {
		return uuid.Nil, "", pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid user id")
	}
	return uid, enums.UserRole(middleware.RoleFromContext(r.Context())), nil
}

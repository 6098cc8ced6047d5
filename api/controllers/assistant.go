package controllers

import (
	"net/http"

	"github.com/orderbuddy/orderbuddy-backend/api/middleware"
	"github.com/orderbuddy/orderbuddy-backend/api/responses"
	"github.com/orderbuddy/orderbuddy-backend/api/validators"
	assistantsvc "github.com/orderbuddy/orderbuddy-backend/internal/assistant"
	pkgerrors "github.com/orderbuddy/orderbuddy-backend/pkg/errors"
	"github.com/orderbuddy/orderbuddy-backend/pkg/logger"
)

// AssistantChat relays a user message to the shopping assistant.
func AssistantChat(svc assistantsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "assistant service unavailable"))
			return
		}

		user := middleware.UserFromContext(r.Context())
		if user == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "user context missing"))
			return
		}

		var payload assistantsvc.ChatRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Chat(r.Context(), user, payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}

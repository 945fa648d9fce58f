package chat

import (
	"net/http"

	"github.com/strawfields/strawfields-backend/api/middleware"
	"github.com/strawfields/strawfields-backend/api/responses"
	"github.com/strawfields/strawfields-backend/api/validators"
	chatsvc "github.com/strawfields/strawfields-backend/internal/chat"
	pkgerrors "github.com/strawfields/strawfields-backend/pkg/errors"
	"github.com/strawfields/strawfields-backend/pkg/logger"
)

// MessageRequest carries one visitor input, either typed text or a
// quick-reply token.
type MessageRequest struct {
	Message string `json:"message" validate:"required,max=500"`
}

// MessagePost resolves one chat input for the session.
func MessagePost(svc chatsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "chat service unavailable"))
			return
		}

		sessID := middleware.SessionIDFromContext(r.Context())
		if sessID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "session context missing"))
			return
		}

		var payload MessageRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		resp, err := svc.HandleMessage(r.Context(), sessID, payload.Message)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, resp)
	}
}

// HistoryFetch returns the session's conversation log.
func HistoryFetch(svc chatsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "chat service unavailable"))
			return
		}

		sessID := middleware.SessionIDFromContext(r.Context())
		if sessID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "session context missing"))
			return
		}

		history, err := svc.History(r.Context(), sessID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"messages": history})
	}
}

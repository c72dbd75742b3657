package http

import (
	"encoding/json"
	"net/http"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/auth"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/invitation"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/handler/http/response"
)

type InvitationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Accept(w http.ResponseWriter, r *http.Request)
}

type invitationHandlerImpl struct {
	invitationService invitation.InvitationService
}

func NewInvitationHandler(invitationService invitation.InvitationService) InvitationHandler {
	return &invitationHandlerImpl{invitationService: invitationService}
}

func (h *invitationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req invitation.CreateInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.invitationService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Invitation sent", result)
}

func (h *invitationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.invitationService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Accept runs with authentication but before any tenant is selected, so it
// reads the user from the token rather than the request context.
func (h *invitationHandlerImpl) Accept(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromToken(r)
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var req invitation.AcceptInvitationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.invitationService.Accept(r.Context(), userID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Invitation accepted", nil)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/auth"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/organization"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/handler/http/response"
)

type OrganizationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetMine(w http.ResponseWriter, r *http.Request)
	ListMemberships(w http.ResponseWriter, r *http.Request)
}

type organizationHandlerImpl struct {
	organizationService organization.OrganizationService
}

func NewOrganizationHandler(organizationService organization.OrganizationService) OrganizationHandler {
	return &organizationHandlerImpl{organizationService: organizationService}
}

func (h *organizationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromToken(r)
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var req organization.CreateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.organizationService.Create(r.Context(), userID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Organization created", result)
}

func (h *organizationHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	result, err := h.organizationService.GetMine(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *organizationHandlerImpl) ListMemberships(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromToken(r)
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.organizationService.ListMemberships(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

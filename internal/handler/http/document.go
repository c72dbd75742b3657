package http

import (
	"net/http"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/document"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

const maxDocumentSize = 25 << 20 // 25 MiB

type DocumentHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type documentHandlerImpl struct {
	documentService document.DocumentService
}

func NewDocumentHandler(documentService document.DocumentService) DocumentHandler {
	return &documentHandlerImpl{documentService: documentService}
}

func (h *documentHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxDocumentSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing file", nil)
		return
	}
	defer file.Close()

	employeeID := r.FormValue("employee_id")
	if employeeID == "" {
		response.BadRequest(w, "employee_id is required", nil)
		return
	}

	contentType := header.Header.Get("Content-Type")
	result, err := h.documentService.Upload(r.Context(), employeeID, file, header.Filename, contentType, header.Size)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Document uploaded", result)
}

func (h *documentHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var employeeID *string
	if v := r.URL.Query().Get("employee_id"); v != "" {
		employeeID = &v
	}

	result, err := h.documentService.List(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *documentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.documentService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Document deleted", nil)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/news"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type NewsHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type newsHandlerImpl struct {
	newsService news.NewsService
}

func NewNewsHandler(newsService news.NewsService) NewsHandler {
	return &newsHandlerImpl{newsService: newsService}
}

func (h *newsHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req news.CreateNewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.newsService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "News item published", result)
}

func (h *newsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.newsService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *newsHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.newsService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *newsHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req news.UpdateNewsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.newsService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *newsHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.newsService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "News item deleted", nil)
}

package http

import (
	"encoding/json"
	"net/http"

	"github.com/aiaugments-collab/Augment-HR-sub000/internal/domain/recruitment"
	"github.com/aiaugments-collab/Augment-HR-sub000/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

const maxResumeSize = 10 << 20 // 10 MiB

type RecruitmentHandler interface {
	// Postings
	CreatePosting(w http.ResponseWriter, r *http.Request)
	ListPostings(w http.ResponseWriter, r *http.Request)
	UpdatePosting(w http.ResponseWriter, r *http.Request)

	// Candidates
	AddCandidate(w http.ResponseWriter, r *http.Request)
	ListCandidates(w http.ResponseWriter, r *http.Request)
	UploadResume(w http.ResponseWriter, r *http.Request)
	ScreenCandidate(w http.ResponseWriter, r *http.Request)
}

type recruitmentHandlerImpl struct {
	recruitmentService recruitment.RecruitmentService
}

func NewRecruitmentHandler(recruitmentService recruitment.RecruitmentService) RecruitmentHandler {
	return &recruitmentHandlerImpl{recruitmentService: recruitmentService}
}

// ========== POSTINGS ==========

func (h *recruitmentHandlerImpl) CreatePosting(w http.ResponseWriter, r *http.Request) {
	var req recruitment.CreateJobPostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.recruitmentService.CreatePosting(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job posting created", result)
}

func (h *recruitmentHandlerImpl) ListPostings(w http.ResponseWriter, r *http.Request) {
	result, err := h.recruitmentService.ListPostings(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *recruitmentHandlerImpl) UpdatePosting(w http.ResponseWriter, r *http.Request) {
	var req recruitment.UpdateJobPostingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	result, err := h.recruitmentService.UpdatePosting(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ========== CANDIDATES ==========

func (h *recruitmentHandlerImpl) AddCandidate(w http.ResponseWriter, r *http.Request) {
	var req recruitment.AddCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.JobPostingID = chi.URLParam(r, "id")

	result, err := h.recruitmentService.AddCandidate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Candidate added", result)
}

func (h *recruitmentHandlerImpl) ListCandidates(w http.ResponseWriter, r *http.Request) {
	result, err := h.recruitmentService.ListCandidates(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *recruitmentHandlerImpl) UploadResume(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxResumeSize); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		response.BadRequest(w, "Missing resume file", nil)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	result, err := h.recruitmentService.UploadResume(r.Context(), chi.URLParam(r, "candidateID"), file, header.Filename, contentType)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *recruitmentHandlerImpl) ScreenCandidate(w http.ResponseWriter, r *http.Request) {
	result, err := h.recruitmentService.ScreenCandidate(r.Context(), chi.URLParam(r, "candidateID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

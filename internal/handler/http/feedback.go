package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/lawding/leavecalc-api/internal/domain/feedback"
	"github.com/lawding/leavecalc-api/internal/handler/http/response"
	feedbackService "github.com/lawding/leavecalc-api/internal/service/feedback"
)

type FeedbackHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type FeedbackHandlerImpl struct {
	feedbackService feedbackService.Service
}

func NewFeedbackHandler(svc feedbackService.Service) FeedbackHandler {
	return &FeedbackHandlerImpl{feedbackService: svc}
}

// Submit implements FeedbackHandler.
func (h *FeedbackHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	var req feedback.SubmitFeedbackRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Submit feedback decode error", "error", err)
		response.BadRequest(w, "BAD_REQUEST", "Invalid request format", nil)
		return
	}

	created, err := h.feedbackService.Submit(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Feedback submitted", created)
}

// List implements FeedbackHandler. Admin only.
func (h *FeedbackHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	page := 1
	limit := 20
	if p := r.URL.Query().Get("page"); p != "" {
		if pageNum, err := strconv.Atoi(p); err == nil && pageNum > 0 {
			page = pageNum
		}
	}
	if l := r.URL.Query().Get("limit"); l != "" {
		if limitNum, err := strconv.Atoi(l); err == nil && limitNum > 0 {
			limit = limitNum
		}
	}

	items, total, err := h.feedbackService.List(r.Context(), page, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	response.SuccessWithMeta(w, items, &response.Meta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: totalPages,
	})
}

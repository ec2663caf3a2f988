package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/lawding/leavecalc-api/internal/domain/rating"
	"github.com/lawding/leavecalc-api/internal/handler/http/response"
	ratingService "github.com/lawding/leavecalc-api/internal/service/rating"
)

type RatingHandler interface {
	Launch(w http.ResponseWriter, r *http.Request)
	CanShow(w http.ResponseWriter, r *http.Request)
	Submitted(w http.ResponseWriter, r *http.Request)
	Dismissed(w http.ResponseWriter, r *http.Request)
}

type RatingHandlerImpl struct {
	ratingService ratingService.Service
}

func NewRatingHandler(svc ratingService.Service) RatingHandler {
	return &RatingHandlerImpl{ratingService: svc}
}

// Launch implements RatingHandler. Clients call this once per cold start.
func (h *RatingHandlerImpl) Launch(w http.ResponseWriter, r *http.Request) {
	var req rating.LaunchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Rating launch decode error", "error", err)
		response.BadRequest(w, "BAD_REQUEST", "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.ratingService.Launch(r.Context(), req.DeviceID, req.AppVersion); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Session started", nil)
}

// CanShow implements RatingHandler.
func (h *RatingHandlerImpl) CanShow(w http.ResponseWriter, r *http.Request) {
	deviceID := r.URL.Query().Get("device_id")
	if deviceID == "" {
		response.BadRequest(w, "BAD_REQUEST", "device_id is required", nil)
		return
	}

	canShow, err := h.ratingService.CanShow(r.Context(), deviceID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rating.CanShowResponse{CanShow: canShow})
}

// Submitted implements RatingHandler.
func (h *RatingHandlerImpl) Submitted(w http.ResponseWriter, r *http.Request) {
	var req rating.SubmittedRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Rating submitted decode error", "error", err)
		response.BadRequest(w, "BAD_REQUEST", "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.ratingService.MarkSubmitted(r.Context(), req.DeviceID, req.AppVersion); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Rating recorded", nil)
}

// Dismissed implements RatingHandler.
func (h *RatingHandlerImpl) Dismissed(w http.ResponseWriter, r *http.Request) {
	var req rating.DismissedRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Rating dismissed decode error", "error", err)
		response.BadRequest(w, "BAD_REQUEST", "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.ratingService.MarkDismissed(r.Context(), req.DeviceID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Dismissal recorded", nil)
}

package handler

import (
	"time"

	"mes-workforce/internal/delivery/http/dto"
	"mes-workforce/internal/delivery/http/middleware"
	"mes-workforce/internal/pkg/response"
	"mes-workforce/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type WorkloadHandler struct {
	uc usecase.WorkloadUsecase
}

type availabilityCheckRequest struct {
	Date        string   `json:"date"`
	StartTime   string   `json:"start_time,omitempty"`
	EndTime     string   `json:"end_time,omitempty"`
	HoursNeeded *float64 `json:"hours_needed,omitempty"`
}

func NewWorkloadHandler(uc usecase.WorkloadUsecase) *WorkloadHandler {
	return &WorkloadHandler{uc: uc}
}

func (h *WorkloadHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/:worker_id/workload", h.Workload)
	r.Get("/:worker_id/performance", h.Performance)
	r.Post("/:worker_id/availability-check", h.AvailabilityCheck)
}

func (h *WorkloadHandler) Workload(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("worker_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	analysis, err := h.uc.GetWorkerWorkload(c.Context(), id)
	if err != nil {
		return mapWorkerError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, analysis)
}

func (h *WorkloadHandler) Performance(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("worker_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var rng usecase.DateRange
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid from date", nil, err)
		}
		rng.From = &from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.DateOnly, raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid to date", nil, err)
		}
		rng.To = &to
	}

	metrics, err := h.uc.GetWorkerPerformance(c.Context(), id, rng)
	if err != nil {
		return mapWorkerError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, metrics)
}

func (h *WorkloadHandler) AvailabilityCheck(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("worker_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req availabilityCheckRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	date, err := time.ParseInLocation(time.DateOnly, req.Date, time.Local)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid date", nil, err)
	}

	result, err := h.uc.CheckAvailability(c.Context(), usecase.AvailabilityCheck{
		WorkerID:    id,
		Date:        date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		HoursNeeded: req.HoursNeeded,
	})
	if err != nil {
		return mapWorkerError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewAvailabilityResponse(result))
}

package handler

import (
	"errors"
	"time"

	"mes-workforce/internal/delivery/http/dto"
	"mes-workforce/internal/delivery/http/middleware"
	"mes-workforce/internal/domain/worker"
	"mes-workforce/internal/pkg/response"
	"mes-workforce/internal/repository"
	"mes-workforce/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type WorkerHandler struct {
	uc usecase.WorkforceUsecase
}

type skillPayload struct {
	Name          string     `json:"name"`
	Level         string     `json:"level"`
	CertifiedAt   *time.Time `json:"certified_at,omitempty"`
	CertExpiresAt *time.Time `json:"cert_expires_at,omitempty"`
}

type updateSkillsRequest struct {
	Skills []skillPayload `json:"skills"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func NewWorkerHandler(uc usecase.WorkforceUsecase) *WorkerHandler {
	return &WorkerHandler{uc: uc}
}

func (h *WorkerHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.List)
	r.Get("/:worker_id", h.Get)
	r.Put("/:worker_id/skills", h.UpdateSkills)
	r.Put("/:worker_id/status", h.UpdateStatus)
}

func (h *WorkerHandler) List(c fiber.Ctx) error {
	filter := repository.WorkerFilter{
		Department: c.Query("department"),
		ShiftType:  c.Query("shift_type"),
		SkillName:  c.Query("skill"),
	}

	if raw := c.Query("status"); raw != "" {
		st := worker.Status(raw)
		if !st.Valid() {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid status filter", nil, nil)
		}
		filter.Statuses = []worker.Status{st}
	}
	if raw := c.Query("work_center_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid work center id", nil, err)
		}
		filter.WorkCenterID = &id
	}

	workers, err := h.uc.ListWorkers(c.Context(), filter)
	if err != nil {
		return mapWorkerError(err)
	}

	out := make([]dto.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		out = append(out, dto.NewWorkerResponse(w))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *WorkerHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("worker_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	w, err := h.uc.GetWorker(c.Context(), id)
	if err != nil {
		return mapWorkerError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewWorkerResponse(w))
}

func (h *WorkerHandler) UpdateSkills(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("worker_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req updateSkillsRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	skills := make([]worker.Skill, 0, len(req.Skills))
	for _, s := range req.Skills {
		skills = append(skills, worker.Skill{
			Name:          s.Name,
			Level:         worker.Proficiency(s.Level),
			CertifiedAt:   s.CertifiedAt,
			CertExpiresAt: s.CertExpiresAt,
		})
	}

	w, err := h.uc.UpdateSkills(c.Context(), id, skills)
	if err != nil {
		return mapWorkerError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewWorkerResponse(w))
}

func (h *WorkerHandler) UpdateStatus(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("worker_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	var req updateStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	w, err := h.uc.UpdateStatus(c.Context(), id, worker.Status(req.Status))
	if err != nil {
		return mapWorkerError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewWorkerResponse(w))
}

func mapWorkerError(err error) error {
	switch {
	case errors.Is(err, usecase.ErrWorkerNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Worker not found", nil, err)
	case errors.Is(err, usecase.ErrTaskNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Task not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}

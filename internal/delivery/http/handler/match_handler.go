package handler

import (
	"strconv"
	"strings"

	"mes-workforce/internal/delivery/http/dto"
	"mes-workforce/internal/delivery/http/middleware"
	"mes-workforce/internal/domain/matching"
	"mes-workforce/internal/domain/worker"
	"mes-workforce/internal/pkg/response"
	"mes-workforce/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	uc usecase.WorkerMatchUsecase
}

type requirementPayload struct {
	Name                  string  `json:"name"`
	MinimumLevel          *string `json:"minimum_level,omitempty"`
	Required              bool    `json:"required"`
	CertificationRequired bool    `json:"certification_required"`
}

type searchWorkersRequest struct {
	Requirements       []requirementPayload `json:"requirements"`
	IncludeUnavailable bool                 `json:"include_unavailable"`
	WorkCenterID       *uuid.UUID           `json:"work_center_id,omitempty"`
	MinimumMatchScore  float64              `json:"minimum_match_score"`
}

func NewMatchHandler(uc usecase.WorkerMatchUsecase) *MatchHandler {
	return &MatchHandler{uc: uc}
}

func (h *MatchHandler) RegisterRoutes(workers fiber.Router, tasks fiber.Router) {
	if workers != nil {
		workers.Post("/search", h.SearchWorkers)
	}
	if tasks != nil {
		tasks.Get("/:task_id/best-match", h.BestMatchForTask)
	}
}

func (h *MatchHandler) SearchWorkers(c fiber.Ctx) error {
	var req searchWorkersRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if len(req.Requirements) == 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "At least one requirement is required", nil, nil)
	}

	reqs := make([]matching.SkillRequirement, 0, len(req.Requirements))
	for _, r := range req.Requirements {
		if strings.TrimSpace(r.Name) == "" {
			return middleware.NewAppError(fiber.StatusBadRequest, "Requirement name must not be empty", nil, nil)
		}
		sr := matching.SkillRequirement{
			Name:        strings.TrimSpace(r.Name),
			Required:    r.Required,
			RequireCert: r.CertificationRequired,
		}
		if r.MinimumLevel != nil {
			lvl := worker.Proficiency(strings.ToLower(strings.TrimSpace(*r.MinimumLevel)))
			if !lvl.Valid() {
				return middleware.NewAppError(fiber.StatusBadRequest, "Invalid minimum level: "+*r.MinimumLevel, nil, nil)
			}
			sr.MinLevel = &lvl
		}
		reqs = append(reqs, sr)
	}

	matches, err := h.uc.FindWorkersWithSkills(c.Context(), reqs, usecase.FindOptions{
		IncludeUnavailable: req.IncludeUnavailable,
		WorkCenterID:       req.WorkCenterID,
		MinimumMatchScore:  req.MinimumMatchScore,
	})
	if err != nil {
		return mapWorkerError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResponses(matches))
}

func (h *MatchHandler) BestMatchForTask(c fiber.Ctx) error {
	taskID, err := uuid.Parse(c.Params("task_id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	opts := usecase.BestMatchOptions{
		ConsiderWorkload:    queryBool(c, "consider_workload"),
		ConsiderPerformance: queryBool(c, "consider_performance"),
	}
	if raw := c.Query("max_candidates"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return middleware.NewAppError(fiber.StatusBadRequest, "Invalid max_candidates", nil, err)
		}
		opts.MaxCandidates = n
	}

	matches, err := h.uc.FindBestMatchForTask(c.Context(), taskID, opts)
	if err != nil {
		return mapWorkerError(err)
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.NewMatchResponses(matches))
}

func queryBool(c fiber.Ctx, key string) bool {
	switch strings.ToLower(c.Query(key)) {
	case "1", "true", "yes":
		return true
	}
	return false
}

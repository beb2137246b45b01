package matching

import (
	"strings"

	"mes-workforce/internal/domain/task"
	"mes-workforce/internal/domain/worker"
)

// TypeDefaults maps a task type to the skill set that type implies. The table
// is built once at startup and injected; per-deployment variation happens in
// configuration, not code.
type TypeDefaults map[string][]SkillRequirement

// DefaultTypeSkills is the stock task-type table for the standard
// manufacturing task types.
func DefaultTypeSkills() TypeDefaults {
	return TypeDefaults{
		"welding": {
			{Name: "Welding", MinLevel: levelPtr(worker.ProficiencyAdvanced), Required: true, RequireCert: true},
			{Name: "Safety", MinLevel: levelPtr(worker.ProficiencyIntermediate), Required: true},
		},
		"assembly": {
			{Name: "Assembly", MinLevel: levelPtr(worker.ProficiencyIntermediate), Required: true},
			{Name: "Quality Control", MinLevel: levelPtr(worker.ProficiencyBeginner)},
		},
		"machining": {
			{Name: "CNC Operation", MinLevel: levelPtr(worker.ProficiencyAdvanced), Required: true},
			{Name: "Blueprint Reading", MinLevel: levelPtr(worker.ProficiencyIntermediate)},
		},
		"inspection": {
			{Name: "Quality Control", MinLevel: levelPtr(worker.ProficiencyAdvanced), Required: true},
			{Name: "Measurement Tools", MinLevel: levelPtr(worker.ProficiencyIntermediate), Required: true},
		},
		"maintenance": {
			{Name: "Equipment Maintenance", MinLevel: levelPtr(worker.ProficiencyIntermediate), Required: true},
			{Name: "Electrical", MinLevel: levelPtr(worker.ProficiencyBeginner)},
		},
		"packaging": {
			{Name: "Packaging", MinLevel: levelPtr(worker.ProficiencyBeginner), Required: true},
		},
	}
}

// ExtractRequirements derives the requirement list for a task: explicit
// metadata skills first, then the defaults for the task's type. The two
// sources are concatenated without de-duplication, so a skill named by both
// is scored twice; that weighting is part of the observed contract.
func ExtractRequirements(t task.Task, defaults TypeDefaults) []SkillRequirement {
	reqs := make([]SkillRequirement, 0)

	if t.Metadata != nil {
		for _, ms := range t.Metadata.RequiredSkills {
			name := strings.TrimSpace(ms.Name)
			if name == "" {
				continue
			}
			req := SkillRequirement{
				Name: name,
				// Metadata skills are required unless explicitly opted out.
				Required:    ms.Required == nil || *ms.Required,
				RequireCert: ms.CertificationRequired,
			}
			if ms.MinimumLevel != nil {
				lvl := worker.Proficiency(strings.ToLower(strings.TrimSpace(*ms.MinimumLevel)))
				if lvl.Valid() {
					req.MinLevel = levelPtr(lvl)
				}
			}
			reqs = append(reqs, req)
		}
	}

	if defaults != nil {
		reqs = append(reqs, defaults[strings.ToLower(strings.TrimSpace(t.Type))]...)
	}

	return reqs
}

func levelPtr(p worker.Proficiency) *worker.Proficiency {
	return &p
}

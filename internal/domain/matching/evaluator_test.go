package matching

import (
	"testing"
	"time"

	"mes-workforce/internal/domain/worker"
)

func skilledWorker(status worker.Status, skills ...worker.Skill) worker.Worker {
	return worker.Worker{FullName: "Test Worker", Status: status, Skills: skills}
}

func TestEvaluateAt_EmptyRequirements(t *testing.T) {
	m := EvaluateAt(skilledWorker(worker.StatusAvailable), nil, time.Now())
	if m.Score != 0 {
		t.Fatalf("expected score 0, got %v", m.Score)
	}
	if !m.LevelSatisfied || !m.CertificationValid {
		t.Fatalf("empty requirements must leave gates satisfied")
	}
	if !m.Available {
		t.Fatalf("available worker must report Available")
	}
}

func TestEvaluateAt_MissingRequiredSkill(t *testing.T) {
	reqs := []SkillRequirement{{Name: "Welding", Required: true}}
	m := EvaluateAt(skilledWorker(worker.StatusAvailable), reqs, time.Now())
	if m.Score != 0 {
		t.Fatalf("expected score 0, got %v", m.Score)
	}
	if m.LevelSatisfied {
		t.Fatalf("missing required skill must clear LevelSatisfied")
	}
	if len(m.MissingSkills) != 1 || m.MissingSkills[0] != "Welding" {
		t.Fatalf("unexpected missing skills: %v", m.MissingSkills)
	}
	if m.Eligible() {
		t.Fatalf("expected ineligible match")
	}
}

func TestEvaluateAt_MissingOptionalSkillKeepsEligibility(t *testing.T) {
	reqs := []SkillRequirement{{Name: "Packaging"}}
	m := EvaluateAt(skilledWorker(worker.StatusAvailable), reqs, time.Now())
	if !m.LevelSatisfied {
		t.Fatalf("optional skill must not clear LevelSatisfied")
	}
	if m.Score != 0 {
		t.Fatalf("expected score 0, got %v", m.Score)
	}
}

func TestEvaluateAt_SkillWithoutLevelConstraint(t *testing.T) {
	reqs := []SkillRequirement{{Name: "Assembly", Required: true}}
	w := skilledWorker(worker.StatusAvailable, worker.Skill{Name: "Assembly", Level: worker.ProficiencyBeginner})
	m := EvaluateAt(w, reqs, time.Now())
	if m.Score != 100 {
		t.Fatalf("expected score 100, got %v", m.Score)
	}
	if !m.LevelSatisfied {
		t.Fatalf("expected LevelSatisfied")
	}
}

func TestEvaluateAt_LevelBonusClampedAt100(t *testing.T) {
	lvl := worker.ProficiencyIntermediate
	reqs := []SkillRequirement{{Name: "Welding", MinLevel: &lvl, Required: true}}
	w := skilledWorker(worker.StatusAvailable, worker.Skill{Name: "Welding", Level: worker.ProficiencyExpert})
	m := EvaluateAt(w, reqs, time.Now())
	// 1.0 + 0.1*2 excess levels = 1.2, scaled to 120, clamped.
	if m.Score != 100 {
		t.Fatalf("expected clamped score 100, got %v", m.Score)
	}
}

func TestEvaluateAt_PartialCreditBelowLevel(t *testing.T) {
	lvl := worker.ProficiencyIntermediate
	reqs := []SkillRequirement{{Name: "Welding", MinLevel: &lvl, Required: true}}
	w := skilledWorker(worker.StatusAvailable, worker.Skill{Name: "Welding", Level: worker.ProficiencyBeginner})
	m := EvaluateAt(w, reqs, time.Now())
	// 0.5 * (1/2) = 0.25 -> 25.
	if m.Score != 25 {
		t.Fatalf("expected score 25, got %v", m.Score)
	}
	if !m.LevelSatisfied {
		t.Fatalf("present-but-below-level skill must keep LevelSatisfied")
	}
}

func TestEvaluateAt_BonusGrowsWithExcessLevel(t *testing.T) {
	lvl := worker.ProficiencyBeginner
	reqs := []SkillRequirement{{Name: "Assembly", MinLevel: &lvl}}

	var prev float64 = -1
	for _, l := range []worker.Proficiency{
		worker.ProficiencyBeginner,
		worker.ProficiencyIntermediate,
		worker.ProficiencyAdvanced,
	} {
		w := skilledWorker(worker.StatusAvailable, worker.Skill{Name: "Assembly", Level: l})
		m := EvaluateAt(w, reqs, time.Now())
		if m.Score <= prev {
			t.Fatalf("score must grow with excess level: level=%s score=%v prev=%v", l, m.Score, prev)
		}
		prev = m.Score
	}
}

func TestEvaluateAt_ExpiredCertificationHalvesContribution(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	certified := now.AddDate(-2, 0, 0)
	expired := now.AddDate(0, -1, 0)

	lvl := worker.ProficiencyAdvanced
	reqs := []SkillRequirement{{Name: "Welding", MinLevel: &lvl, Required: true, RequireCert: true}}
	w := skilledWorker(worker.StatusAvailable, worker.Skill{
		Name:          "Welding",
		Level:         worker.ProficiencyAdvanced,
		CertifiedAt:   &certified,
		CertExpiresAt: &expired,
	})

	m := EvaluateAt(w, reqs, now)
	if m.Score != 50 {
		t.Fatalf("expected halved score 50, got %v", m.Score)
	}
	if m.CertificationValid {
		t.Fatalf("expired certification must clear CertificationValid")
	}
	if !m.LevelSatisfied {
		t.Fatalf("certification issues must not clear LevelSatisfied")
	}
}

func TestEvaluateAt_ValidCertificationKeepsFullScore(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	certified := now.AddDate(-1, 0, 0)
	expires := now.AddDate(1, 0, 0)

	lvl := worker.ProficiencyAdvanced
	reqs := []SkillRequirement{{Name: "Welding", MinLevel: &lvl, Required: true, RequireCert: true}}
	w := skilledWorker(worker.StatusAvailable, worker.Skill{
		Name:          "Welding",
		Level:         worker.ProficiencyAdvanced,
		CertifiedAt:   &certified,
		CertExpiresAt: &expires,
	})

	m := EvaluateAt(w, reqs, now)
	if m.Score != 100 {
		t.Fatalf("expected score 100, got %v", m.Score)
	}
	if !m.CertificationValid {
		t.Fatalf("expected CertificationValid")
	}
}

func TestEvaluateAt_AveragesAcrossRequirements(t *testing.T) {
	lvl := worker.ProficiencyIntermediate
	reqs := []SkillRequirement{
		{Name: "Assembly", MinLevel: &lvl, Required: true},
		{Name: "Quality Control"},
	}
	w := skilledWorker(worker.StatusAvailable, worker.Skill{Name: "Assembly", Level: worker.ProficiencyIntermediate})
	m := EvaluateAt(w, reqs, time.Now())
	// (1.0 + 0) / 2 = 0.5 -> 50.
	if m.Score != 50 {
		t.Fatalf("expected score 50, got %v", m.Score)
	}
	if len(m.MatchedSkills) != 1 || len(m.MissingSkills) != 1 {
		t.Fatalf("unexpected matched=%v missing=%v", m.MatchedSkills, m.MissingSkills)
	}
}

func TestEvaluateAt_SkillNameIsCaseInsensitive(t *testing.T) {
	reqs := []SkillRequirement{{Name: "welding", Required: true}}
	w := skilledWorker(worker.StatusAvailable, worker.Skill{Name: "Welding", Level: worker.ProficiencyExpert})
	m := EvaluateAt(w, reqs, time.Now())
	if len(m.MatchedSkills) != 1 {
		t.Fatalf("expected case-insensitive skill match, missing=%v", m.MissingSkills)
	}
}

func TestEvaluateAt_AvailabilityFollowsStatus(t *testing.T) {
	for st, want := range map[worker.Status]bool{
		worker.StatusAvailable: true,
		worker.StatusWorking:   false,
		worker.StatusSickLeave: false,
	} {
		m := EvaluateAt(skilledWorker(st), nil, time.Now())
		if m.Available != want {
			t.Fatalf("status %s: expected Available=%v", st, want)
		}
	}
}

package seeder

import (
	"context"
	"fmt"

	"mes-workforce/internal/database"
)

type WorkersSeeder struct{}

func (WorkersSeeder) Name() string { return "workers" }

type seedSkill struct {
	Name  string
	Level string
}

type seedWorker struct {
	EmployeeCode   string
	FullName       string
	Department     string
	ShiftType      string
	WorkCenterCode string
	Efficiency     float64
	QualityScore   float64
	Skills         []seedSkill
}

func (WorkersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "workers",
		"id", "employee_code", "full_name", "department", "shift_type",
		"status", "work_center_id", "efficiency", "quality_score"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "worker_skills", "id", "worker_id", "name", "level"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []seedWorker{
		{
			EmployeeCode: "EMP-0001", FullName: "Ade Kurniawan", Department: "Fabrication",
			ShiftType: "morning", WorkCenterCode: "WC-WELD", Efficiency: 92, QualityScore: 95,
			Skills: []seedSkill{{"Welding", "expert"}, {"Safety", "advanced"}},
		},
		{
			EmployeeCode: "EMP-0002", FullName: "Siti Rahma", Department: "Production",
			ShiftType: "morning", WorkCenterCode: "WC-ASSY", Efficiency: 88, QualityScore: 90,
			Skills: []seedSkill{{"Assembly", "advanced"}, {"Quality Control", "intermediate"}},
		},
		{
			EmployeeCode: "EMP-0003", FullName: "Budi Santoso", Department: "Production",
			ShiftType: "night", WorkCenterCode: "WC-MACH", Efficiency: 85, QualityScore: 87,
			Skills: []seedSkill{{"CNC Operation", "advanced"}, {"Blueprint Reading", "intermediate"}},
		},
		{
			EmployeeCode: "EMP-0004", FullName: "Dewi Lestari", Department: "Quality",
			ShiftType: "morning", WorkCenterCode: "WC-QA", Efficiency: 90, QualityScore: 97,
			Skills: []seedSkill{{"Quality Control", "expert"}, {"Measurement Tools", "advanced"}},
		},
	}

	for _, it := range items {
		row := tx.QueryRow(
			ctx,
			`INSERT INTO workers (id, employee_code, full_name, department, shift_type, work_center_id, efficiency, quality_score)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, (SELECT id FROM work_centers WHERE code = $5), $6, $7)
			 ON CONFLICT (employee_code) DO UPDATE SET employee_code = EXCLUDED.employee_code
			 RETURNING id`,
			it.EmployeeCode, it.FullName, it.Department, it.ShiftType, it.WorkCenterCode, it.Efficiency, it.QualityScore,
		)

		var workerID string
		if err := row.Scan(&workerID); err != nil {
			return fmt.Errorf("seed worker %s: %w", it.EmployeeCode, err)
		}

		for _, s := range it.Skills {
			_, err := tx.Exec(
				ctx,
				`INSERT INTO worker_skills (id, worker_id, name, level)
				 VALUES (gen_random_uuid(), $1, $2, $3)
				 ON CONFLICT (worker_id, name) DO NOTHING`,
				workerID, s.Name, s.Level,
			)
			if err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

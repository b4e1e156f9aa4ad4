package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"ondemand-engine/internal/domain"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// SeedResult counts the rows written by a seed pass.
type SeedResult struct {
	Categories    int `json:"categories"`
	SubCategories int `json:"subCategories"`
	Workers       int `json:"workers"`
	Jobs          int `json:"jobs"`
}

// Seed re-applies the demo directory. Existing rows with the same keys are
// overwritten; rows added by other means are left alone.
func (d *DB) Seed(ctx context.Context) (SeedResult, error) {
	tx, err := d.Pool.BeginTx(ctx, nil)
	if err != nil {
		return SeedResult{}, err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := seedTx(ctx, tx)
	if err != nil {
		return SeedResult{}, err
	}
	return res, tx.Commit()
}

func seedTx(ctx context.Context, tx execer) (SeedResult, error) {
	b := sq.StatementBuilder
	var res SeedResult

	for i, c := range seedCategories {
		if err := UpsertCategory(ctx, tx, b, c, i); err != nil {
			return res, err
		}
		res.Categories++
	}
	for i, s := range seedSubCategories {
		if err := UpsertSubCategory(ctx, tx, b, s, i); err != nil {
			return res, err
		}
		res.SubCategories++
	}
	for i, w := range seedWorkers {
		if err := UpsertWorker(ctx, tx, b, w, i); err != nil {
			return res, err
		}
		res.Workers++
	}
	for i, j := range seedJobs {
		if err := UpsertJob(ctx, tx, b, j, i); err != nil {
			return res, err
		}
		res.Jobs++
	}
	return res, nil
}

func exec(ctx context.Context, db execer, q sq.Sqlizer) error {
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, sqlStr, args...)
	return err
}

func UpsertCategory(ctx context.Context, db execer, b sq.StatementBuilderType, c domain.Category, order int) error {
	q := b.Insert("categories").
		Columns("id", "name", "icon", "color", "worker_count", "sort_order").
		Values(c.ID, c.Name, c.Icon, c.Color, c.WorkerCount, order).
		Suffix("ON CONFLICT(id) DO UPDATE SET name=excluded.name, icon=excluded.icon, color=excluded.color, worker_count=excluded.worker_count, sort_order=excluded.sort_order")
	if err := exec(ctx, db, q); err != nil {
		return fmt.Errorf("upsert category %s: %w", c.ID, err)
	}
	return nil
}

func UpsertSubCategory(ctx context.Context, db execer, b sq.StatementBuilderType, s domain.SubCategory, order int) error {
	q := b.Insert("subcategories").
		Columns("parent_id", "id", "name", "icon", "sort_order").
		Values(s.ParentID, s.ID, s.Name, s.Icon, order).
		Suffix("ON CONFLICT(parent_id, id) DO UPDATE SET name=excluded.name, icon=excluded.icon, sort_order=excluded.sort_order")
	if err := exec(ctx, db, q); err != nil {
		return fmt.Errorf("upsert subcategory %s/%s: %w", s.ParentID, s.ID, err)
	}
	return nil
}

func UpsertWorker(ctx context.Context, db execer, b sq.StatementBuilderType, w domain.Worker, order int) error {
	skills := w.Skills
	if skills == nil {
		skills = []string{}
	}
	skillsJSON, err := json.Marshal(skills)
	if err != nil {
		return err
	}
	var dist sql.NullFloat64
	if w.Distance != nil {
		dist = sql.NullFloat64{Float64: *w.Distance, Valid: true}
	}

	q := b.Insert("workers").
		Columns(
			"id", "name", "profile_image", "category", "rating", "review_count", "hourly_rate",
			"location", "distance", "province", "district", "city", "skills",
			"is_available", "is_verified", "completed_jobs", "response_time", "description", "sort_order",
		).
		Values(
			w.ID, w.Name, w.ProfileImage, w.Category, w.Rating, w.ReviewCount, w.HourlyRate,
			w.Location, dist, w.DetailedLocation.Province, w.DetailedLocation.District, w.DetailedLocation.City, string(skillsJSON),
			w.IsAvailable, w.IsVerified, w.CompletedJobs, w.ResponseTime, w.Description, order,
		).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
  name=excluded.name, profile_image=excluded.profile_image, category=excluded.category,
  rating=excluded.rating, review_count=excluded.review_count, hourly_rate=excluded.hourly_rate,
  location=excluded.location, distance=excluded.distance,
  province=excluded.province, district=excluded.district, city=excluded.city,
  skills=excluded.skills, is_available=excluded.is_available, is_verified=excluded.is_verified,
  completed_jobs=excluded.completed_jobs, response_time=excluded.response_time,
  description=excluded.description, sort_order=excluded.sort_order`)
	if err := exec(ctx, db, q); err != nil {
		return fmt.Errorf("upsert worker %s: %w", w.ID, err)
	}
	return nil
}

func UpsertJob(ctx context.Context, db execer, b sq.StatementBuilderType, j domain.Job, order int) error {
	q := b.Insert("jobs").
		Columns("id", "title", "category", "status", "budget", "applicants", "posted_date", "worker_name", "sort_order").
		Values(j.ID, j.Title, j.Category, string(j.Status), j.Budget, j.Applicants, j.PostedDate, j.WorkerName, order).
		Suffix("ON CONFLICT(id) DO UPDATE SET title=excluded.title, category=excluded.category, status=excluded.status, budget=excluded.budget, applicants=excluded.applicants, posted_date=excluded.posted_date, worker_name=excluded.worker_name, sort_order=excluded.sort_order")
	if err := exec(ctx, db, q); err != nil {
		return fmt.Errorf("upsert job %s: %w", j.ID, err)
	}
	return nil
}

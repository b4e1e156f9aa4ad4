package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"ondemand-engine/internal/domain"
)

// JobTab selects which of the customer's jobs to list.
type JobTab string

const (
	JobTabActive    JobTab = "active"
	JobTabCompleted JobTab = "completed"
	JobTabAll       JobTab = "all"
)

func ParseJobTab(s string) (JobTab, error) {
	switch t := JobTab(s); t {
	case "":
		return JobTabActive, nil
	case JobTabActive, JobTabCompleted, JobTabAll:
		return t, nil
	}
	return "", fmt.Errorf("unknown job tab %q", s)
}

func (t JobTab) statuses() []string {
	switch t {
	case JobTabActive:
		return []string{string(domain.JobPosted), string(domain.JobInProgress)}
	case JobTabCompleted:
		return []string{string(domain.JobCompleted), string(domain.JobCancelled)}
	}
	return nil
}

// ListCategories returns categories in display order. AverageRate is the
// mean hourly rate of listed workers in the category, 0 when none.
func (d *DB) ListCategories(ctx context.Context) ([]domain.Category, error) {
	q := d.SQ.Select(
		"c.id", "c.name", "c.icon", "c.color", "c.worker_count",
		"COALESCE((SELECT AVG(w.hourly_rate) FROM workers w WHERE w.category = c.id), 0)",
	).From("categories c").OrderBy("c.sort_order", "c.id")

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := d.Pool.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Icon, &c.Color, &c.WorkerCount, &c.AverageRate); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// ListSubCategories returns ErrCategoryNotFound for an unknown parent so
// callers can tell that apart from a category with no children.
func (d *DB) ListSubCategories(ctx context.Context, parentID string) ([]domain.SubCategory, error) {
	if ok, err := d.categoryExists(ctx, parentID); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrCategoryNotFound
	}

	q := d.SQ.Select("id", "parent_id", "name", "icon").
		From("subcategories").
		Where(sq.Eq{"parent_id": parentID}).
		OrderBy("sort_order", "id")
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := d.Pool.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.SubCategory{}
	for rows.Next() {
		var s domain.SubCategory
		if err := rows.Scan(&s.ID, &s.ParentID, &s.Name, &s.Icon); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (d *DB) categoryExists(ctx context.Context, id string) (bool, error) {
	sqlStr, args, err := d.SQ.Select("1").From("categories").Where(sq.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		return false, err
	}
	var one int
	err = d.Pool.QueryRowContext(ctx, sqlStr, args...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

// CategoryName resolves a category ID to its display name, falling back to
// the ID itself.
func (d *DB) CategoryName(ctx context.Context, id string) string {
	sqlStr, args, err := d.SQ.Select("name").From("categories").Where(sq.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		return id
	}
	var name string
	if err := d.Pool.QueryRowContext(ctx, sqlStr, args...).Scan(&name); err != nil || name == "" {
		return id
	}
	return name
}

var workerColumns = []string{
	"id", "name", "profile_image", "category", "rating", "review_count", "hourly_rate",
	"location", "distance", "province", "district", "city", "skills",
	"is_available", "is_verified", "completed_jobs", "response_time", "description",
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorker(r rowScanner) (domain.Worker, error) {
	var (
		w          domain.Worker
		dist       sql.NullFloat64
		skillsJSON string
	)
	err := r.Scan(
		&w.ID, &w.Name, &w.ProfileImage, &w.Category, &w.Rating, &w.ReviewCount, &w.HourlyRate,
		&w.Location, &dist, &w.DetailedLocation.Province, &w.DetailedLocation.District, &w.DetailedLocation.City, &skillsJSON,
		&w.IsAvailable, &w.IsVerified, &w.CompletedJobs, &w.ResponseTime, &w.Description,
	)
	if err != nil {
		return w, err
	}
	if dist.Valid {
		v := dist.Float64
		w.Distance = &v
	}
	if err := json.Unmarshal([]byte(skillsJSON), &w.Skills); err != nil || w.Skills == nil {
		w.Skills = []string{}
	}
	return w, nil
}

// ListWorkers returns every worker, or those in category when it is set.
func (d *DB) ListWorkers(ctx context.Context, category string) ([]domain.Worker, error) {
	q := d.SQ.Select(workerColumns...).From("workers").OrderBy("sort_order", "id")
	if category != "" {
		q = q.Where(sq.Eq{"category": category})
	}
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := d.Pool.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Worker{}
	for rows.Next() {
		w, err := scanWorker(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, rows.Err()
}

func (d *DB) GetWorker(ctx context.Context, id string) (domain.Worker, error) {
	sqlStr, args, err := d.SQ.Select(workerColumns...).From("workers").Where(sq.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		return domain.Worker{}, err
	}
	w, err := scanWorker(d.Pool.QueryRowContext(ctx, sqlStr, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Worker{}, ErrWorkerNotFound
	}
	return w, err
}

func (d *DB) ListJobs(ctx context.Context, tab JobTab) ([]domain.Job, error) {
	q := d.SQ.Select("id", "title", "category", "status", "budget", "applicants", "posted_date", "worker_name").
		From("jobs").
		OrderBy("sort_order", "id")
	if st := tab.statuses(); st != nil {
		q = q.Where(sq.Eq{"status": st})
	}
	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := d.Pool.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Job{}
	for rows.Next() {
		var j domain.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Category, &j.Status, &j.Budget, &j.Applicants, &j.PostedDate, &j.WorkerName); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

// Stats reports row counts, for health output.
func (d *DB) Stats(ctx context.Context) (SeedResult, error) {
	var s SeedResult
	for _, t := range []struct {
		table string
		dst   *int
	}{
		{"categories", &s.Categories},
		{"subcategories", &s.SubCategories},
		{"workers", &s.Workers},
		{"jobs", &s.Jobs},
	} {
		sqlStr, args, err := d.SQ.Select("COUNT(*)").From(t.table).ToSql()
		if err != nil {
			return s, err
		}
		if err := d.Pool.QueryRowContext(ctx, sqlStr, args...).Scan(t.dst); err != nil {
			return s, fmt.Errorf("count %s: %w", t.table, err)
		}
	}
	return s, nil
}

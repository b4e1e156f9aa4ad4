package store

import (
	"context"
	"errors"
	"testing"

	"ondemand-engine/internal/domain"
)

func openTest(t *testing.T) *DB {
	t.Helper()
	d, err := OpenDir(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("OpenDir: %v", err)
	}
	t.Cleanup(func() { _ = d.Close() })
	return d
}

func TestMigrateSeedsOnce(t *testing.T) {
	ctx := context.Background()
	d := openTest(t)

	var v int
	if err := d.Pool.QueryRowContext(ctx, `PRAGMA user_version;`).Scan(&v); err != nil {
		t.Fatal(err)
	}
	if v != SchemaVersion() {
		t.Fatalf("user_version = %d, want %d", v, SchemaVersion())
	}

	// Running again must be a no-op.
	if err := Migrate(ctx, d.Pool); err != nil {
		t.Fatalf("second Migrate: %v", err)
	}
	st, err := d.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	want := SeedResult{Categories: 8, SubCategories: len(seedSubCategories), Workers: len(seedWorkers), Jobs: 3}
	if st != want {
		t.Fatalf("stats = %+v, want %+v", st, want)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	ctx := context.Background()
	d := openTest(t)

	res, err := d.Seed(ctx)
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if res.Categories != 8 || res.Jobs != 3 {
		t.Fatalf("seed result = %+v", res)
	}
	st, _ := d.Stats(ctx)
	if st.Workers != len(seedWorkers) || st.Categories != 8 {
		t.Fatalf("stats after reseed = %+v", st)
	}
}

func TestListCategories(t *testing.T) {
	d := openTest(t)
	cats, err := d.ListCategories(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(cats) != 8 || cats[0].ID != "cleaning" || cats[7].ID != "moving" {
		t.Fatalf("categories = %+v", cats)
	}
	if cats[0].WorkerCount != 245 || cats[0].AverageRate != 25 {
		t.Fatalf("cleaning = %+v", cats[0])
	}
	for _, c := range cats {
		if c.ID == "appliance" && c.AverageRate != 0 {
			t.Fatalf("appliance average = %v, want 0", c.AverageRate)
		}
	}
}

func TestListSubCategories(t *testing.T) {
	ctx := context.Background()
	d := openTest(t)

	subs, err := d.ListSubCategories(ctx, "plumbing")
	if err != nil {
		t.Fatal(err)
	}
	if len(subs) != 4 || subs[0].ID != "emergency" || subs[0].ParentID != "plumbing" {
		t.Fatalf("subs = %+v", subs)
	}
	if _, err := d.ListSubCategories(ctx, "roofing"); !errors.Is(err, ErrCategoryNotFound) {
		t.Fatalf("err = %v, want ErrCategoryNotFound", err)
	}
}

func TestWorkers(t *testing.T) {
	ctx := context.Background()
	d := openTest(t)

	all, err := d.ListWorkers(ctx, "")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != len(seedWorkers) || all[0].ID != "1" {
		t.Fatalf("workers = %d first %q", len(all), all[0].ID)
	}

	cleaning, err := d.ListWorkers(ctx, "cleaning")
	if err != nil {
		t.Fatal(err)
	}
	if len(cleaning) != 1 || cleaning[0].Name != "Sarah Johnson" {
		t.Fatalf("cleaning = %+v", cleaning)
	}

	w, err := d.GetWorker(ctx, "1")
	if err != nil {
		t.Fatal(err)
	}
	if w.Distance == nil || *w.Distance != 2.3 || len(w.Skills) != 3 || !w.IsVerified || w.DetailedLocation.District != "Colombo" {
		t.Fatalf("worker = %+v", w)
	}

	nd, err := d.GetWorker(ctx, "4")
	if err != nil {
		t.Fatal(err)
	}
	if nd.Distance != nil || nd.DistanceOrZero() != 0 {
		t.Fatalf("distance = %v, want none", nd.Distance)
	}

	if _, err := d.GetWorker(ctx, "999"); !errors.Is(err, ErrWorkerNotFound) {
		t.Fatalf("err = %v, want ErrWorkerNotFound", err)
	}
}

func TestUpsertWorkerOverwrites(t *testing.T) {
	ctx := context.Background()
	d := openTest(t)

	w, _ := d.GetWorker(ctx, "3")
	w.IsAvailable = true
	w.Skills = nil
	if err := UpsertWorker(ctx, d.Pool, d.SQ, w, 2); err != nil {
		t.Fatal(err)
	}
	got, _ := d.GetWorker(ctx, "3")
	if !got.IsAvailable || got.Skills == nil || len(got.Skills) != 0 {
		t.Fatalf("worker = %+v", got)
	}
}

func TestListJobsByTab(t *testing.T) {
	ctx := context.Background()
	d := openTest(t)

	cases := []struct {
		tab  JobTab
		want []string
	}{
		{JobTabActive, []string{"1", "3"}},
		{JobTabCompleted, []string{"2"}},
		{JobTabAll, []string{"1", "2", "3"}},
	}
	for _, tc := range cases {
		jobs, err := d.ListJobs(ctx, tc.tab)
		if err != nil {
			t.Fatal(err)
		}
		var got []string
		for _, j := range jobs {
			got = append(got, j.ID)
			if tc.tab == JobTabActive && !j.Status.Active() {
				t.Errorf("closed job %s in active tab", j.ID)
			}
		}
		if len(got) != len(tc.want) {
			t.Fatalf("%s: got %v, want %v", tc.tab, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("%s: got %v, want %v", tc.tab, got, tc.want)
			}
		}
	}

	jobs, _ := d.ListJobs(ctx, JobTabActive)
	if jobs[0].Status != domain.JobInProgress || jobs[0].Status.Label() != "In Progress" {
		t.Fatalf("first active = %+v", jobs[0])
	}
}

func TestParseJobTab(t *testing.T) {
	if tab, err := ParseJobTab(""); err != nil || tab != JobTabActive {
		t.Fatalf("empty tab = %q, %v", tab, err)
	}
	if _, err := ParseJobTab("archived"); err == nil {
		t.Fatal("expected error")
	}
}

func TestCategoryName(t *testing.T) {
	d := openTest(t)
	ctx := context.Background()
	if got := d.CategoryName(ctx, "appliance"); got != "Appliance Repair" {
		t.Fatalf("got %q", got)
	}
	if got := d.CategoryName(ctx, "roofing"); got != "roofing" {
		t.Fatalf("got %q", got)
	}
}

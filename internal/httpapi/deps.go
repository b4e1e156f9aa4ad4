package httpapi

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"

	"ondemand-engine/internal/config"
	"ondemand-engine/internal/domain"
	"ondemand-engine/internal/events"
	"ondemand-engine/internal/state"
	"ondemand-engine/internal/store"
)

// Directory is the read side of the local worker directory plus reseeding.
type Directory interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListSubCategories(ctx context.Context, parentID string) ([]domain.SubCategory, error)
	CategoryName(ctx context.Context, id string) string
	ListWorkers(ctx context.Context, category string) ([]domain.Worker, error)
	GetWorker(ctx context.Context, id string) (domain.Worker, error)
	ListJobs(ctx context.Context, tab store.JobTab) ([]domain.Job, error)
	Stats(ctx context.Context) (store.SeedResult, error)
	Seed(ctx context.Context) (store.SeedResult, error)
}

type ImageUploader interface {
	UploadPostImage(ctx context.Context, filename string, r io.Reader) (string, error)
}

type Deps struct {
	State    *state.Store
	Dir      Directory
	Uploader ImageUploader
	Hub      *events.Hub
	Log      *slog.Logger

	CfgVal *atomic.Value // stores config.Config

	// SyncStatus holds the background profile refresh status, if running.
	SyncStatus *atomic.Value

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// OnConfigSaved runs after a successful PUT /config.
	OnConfigSaved func(config.Config)
}

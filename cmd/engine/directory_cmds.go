package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"ondemand-engine/internal/search"
	"ondemand-engine/internal/store"
)

// openDirectoryOnly skips config and session setup; the directory is local.
func openDirectoryOnly(ctx context.Context, opts *rootOpts) (*store.DB, error) {
	if err := loadEnvFile(opts.envFile); err != nil {
		return nil, err
	}
	dir := resolveDataDir(opts.dataDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return store.OpenDir(ctx, dir)
}

func newSeedCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Re-seed the local worker directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDirectoryOnly(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer db.Close()
			res, err := db.Seed(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), res)
		},
	}
}

func newWorkersCmd(opts *rootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workers",
		Short: "Search the worker directory",
	}
	cmd.AddCommand(newWorkersSearchCmd(opts), newWorkerShowCmd(opts))
	return cmd
}

func newWorkersSearchCmd(opts *rootOpts) *cobra.Command {
	var (
		f          search.Filters
		price      string
		sortKey    string
		instantCat string
	)
	cmd := &cobra.Command{
		Use:   "search [text]",
		Short: "Search workers by text, filters and sort key",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := search.Request{Filters: f}
			if len(args) == 1 {
				req.Query = args[0]
			}
			var err error
			if req.Filters.Price, err = search.ParsePriceBand(price); err != nil {
				return err
			}
			if req.Sort, err = search.ParseSortKey(sortKey); err != nil {
				return err
			}

			db, err := openDirectoryOnly(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer db.Close()
			all, err := db.ListWorkers(cmd.Context(), "")
			if err != nil {
				return err
			}

			if instantCat != "" {
				return printJSON(cmd.OutOrStdout(), search.InstantFind{Category: instantCat}.Results(all))
			}
			return printJSON(cmd.OutOrStdout(), search.Apply(all, req))
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&f.Province, "province", "", "province contains")
	fl.StringVar(&f.District, "district", "", "district contains")
	fl.StringVar(&f.City, "city", "", "city contains")
	fl.StringVar(&f.Category, "category", "", "category id")
	fl.Float64Var(&f.MinRating, "min-rating", 0, "minimum rating")
	fl.BoolVar(&f.AvailableOnly, "available", false, "available workers only")
	fl.BoolVar(&f.VerifiedOnly, "verified", false, "verified workers only")
	fl.StringVar(&price, "price", "", "price band: under25, under35, under50, 50plus")
	fl.StringVar(&sortKey, "sort", "", "rating, price or distance")
	fl.StringVar(&instantCat, "instant", "", "quick pick by category, ignores other flags")
	return cmd
}

func newWorkerShowCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one worker",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDirectoryOnly(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer db.Close()
			w, err := db.GetWorker(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), w)
		},
	}
}

func newCategoriesCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "categories [id]",
		Short: "List categories, or one category's subcategories",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openDirectoryOnly(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer db.Close()
			if len(args) == 1 {
				subs, err := db.ListSubCategories(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), subs)
			}
			cats, err := db.ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), cats)
		},
	}
}

func newJobsCmd(opts *rootOpts) *cobra.Command {
	var tab string
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "List jobs for a tab",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := store.ParseJobTab(tab)
			if err != nil {
				return err
			}
			db, err := openDirectoryOnly(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer db.Close()
			jobs, err := db.ListJobs(cmd.Context(), t)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), jobs)
		},
	}
	cmd.Flags().StringVar(&tab, "tab", string(store.JobTabActive), "active, completed or all")
	return cmd
}

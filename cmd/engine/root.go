package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"ondemand-engine/internal/config"
)

func newRootCmd() *cobra.Command {
	opts := &rootOpts{}
	root := &cobra.Command{
		Use:           "ondemand",
		Short:         "OnDemand marketplace engine and client",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVar(&opts.dataDir, "data-dir", "", "data directory (default $ONDEMAND_DATA_DIR or .)")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file read before config")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", false, "debug logging")

	root.AddCommand(
		newServeCmd(opts),
		newSeedCmd(opts),
		newLoginCmd(opts),
		newLogoutCmd(opts),
		newWhoamiCmd(opts),
		newProfileCmd(opts),
		newPostsCmd(opts),
		newWorkersCmd(opts),
		newCategoriesCmd(opts),
		newJobsCmd(opts),
		newConfigCmd(opts),
	)
	return root
}

func newConfigCmd(opts *rootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the user config file",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := config.EnsureUserConfig(resolveDataDir(opts.dataDir))
			if err != nil {
				return err
			}
			abs, _ := filepath.Abs(p)
			fmt.Fprintln(cmd.OutOrStdout(), abs)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate the config file with environment overrides applied",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadEnvFile(opts.envFile); err != nil {
				return err
			}
			p, err := config.EnsureUserConfig(resolveDataDir(opts.dataDir))
			if err != nil {
				return err
			}
			cfg, err := config.Load(p)
			if err != nil {
				return err
			}
			config.OverlayEnv(&cfg)
			_, vr := config.NormalizeAndValidate(cfg)
			if err := printJSON(cmd.OutOrStdout(), vr); err != nil {
				return err
			}
			if !vr.OK() {
				return fmt.Errorf("config has %d error(s)", len(vr.Errors))
			}
			return nil
		},
	})
	return cmd
}

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"ondemand-engine/internal/domain"
)

var errNotSignedIn = errors.New("not signed in")

func newLoginCmd(opts *rootOpts) *cobra.Command {
	var mobile, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			if password == "" {
				password = os.Getenv("ONDEMAND_PASSWORD")
			}
			resp, err := a.state.LoginUser(cmd.Context(), strings.TrimSpace(mobile), password)
			if err != nil {
				return err
			}
			if resp.Message != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), resp.Message)
			}
			return printJSON(cmd.OutOrStdout(), resp.User)
		},
	}
	cmd.Flags().StringVar(&mobile, "mobile", "", "10-digit mobile number")
	cmd.Flags().StringVar(&password, "password", "", "password (default $ONDEMAND_PASSWORD)")
	return cmd
}

func newLogoutCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			a.state.LogoutUser(cmd.Context())
			fmt.Fprintln(cmd.OutOrStdout(), "signed out")
			return nil
		},
	}
}

func newWhoamiCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the stored session user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			sess := a.state.CheckStoredAuth()
			if sess == nil {
				return errNotSignedIn
			}
			return printJSON(cmd.OutOrStdout(), sess.User)
		},
	}
}

func newProfileCmd(opts *rootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Fetch the signed-in user's profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			p, err := a.state.FetchUserProfile(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}
	cmd.AddCommand(newProfileUpdateCmd(opts))
	return cmd
}

func newProfileUpdateCmd(opts *rootOpts) *cobra.Command {
	var username, name, email, avatar string
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Change profile fields; only flags given are sent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var upd domain.ProfileUpdate
			f := cmd.Flags()
			if f.Changed("username") {
				upd.Username = &username
			}
			if f.Changed("name") {
				upd.Name = &name
			}
			if f.Changed("email") {
				upd.Email = &email
			}
			if f.Changed("avatar") {
				upd.Avatar = &avatar
			}
			if upd == (domain.ProfileUpdate{}) {
				return errors.New("nothing to update")
			}

			a, err := openApp(opts)
			if err != nil {
				return err
			}
			p, err := a.state.UpdateUserProfile(cmd.Context(), upd)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "new username")
	cmd.Flags().StringVar(&name, "name", "", "new display name")
	cmd.Flags().StringVar(&email, "email", "", "new email")
	cmd.Flags().StringVar(&avatar, "avatar", "", "new avatar URL")
	return cmd
}

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ondemand-engine/internal/domain"
)

func newPostsCmd(opts *rootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List and manage posts",
	}
	cmd.AddCommand(
		newPostsListCmd(opts, "list", "List published posts", false),
		newPostsListCmd(opts, "mine", "List your own posts", true),
		newPostGetCmd(opts),
		newPostCreateCmd(opts),
		newPostUpdateCmd(opts),
		newPostDeleteCmd(opts),
		newPostUploadCmd(opts),
	)
	return cmd
}

func newPostsListCmd(opts *rootOpts, use, short string, mine bool) *cobra.Command {
	var (
		q      domain.PostQuery
		status string
	)
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if status != "" {
				q.Status = domain.PostStatus(status)
				if !q.Status.Valid() {
					return fmt.Errorf("unknown status %q", status)
				}
			}
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			var page domain.PostsPage
			if mine {
				page, err = a.state.FetchUserPosts(cmd.Context(), q)
			} else {
				page, err = a.state.FetchPosts(cmd.Context(), q)
			}
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), page)
		},
	}
	f := cmd.Flags()
	f.IntVar(&q.Page, "page", 1, "page number")
	f.IntVar(&q.Limit, "limit", 10, "posts per page")
	f.StringVar(&status, "status", "", "draft, published or archived")
	if !mine {
		f.StringVar(&q.Category, "category", "", "category filter")
		f.StringVar(&q.Search, "search", "", "free-text search")
	}
	return cmd
}

func newPostGetCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			p, err := a.state.FetchPostByID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}
}

func newPostCreateCmd(opts *rootOpts) *cobra.Command {
	var (
		req    domain.CreatePostRequest
		status string
	)
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req.Status = domain.PostStatus(status)
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			p, err := a.state.CreatePost(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}
	f := cmd.Flags()
	f.StringVar(&req.Title, "title", "", "post title")
	f.StringVar(&req.Content, "content", "", "post body")
	f.StringVar(&req.Category, "category", "", "category")
	f.StringVar(&req.ImageURL, "image-url", "", "image URL from upload-image")
	f.StringSliceVar(&req.Tags, "tag", nil, "tag (repeatable)")
	f.StringVar(&status, "status", "", "draft or published")
	return cmd
}

func newPostUpdateCmd(opts *rootOpts) *cobra.Command {
	var title, content, category, imageURL, status string
	var tags []string
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change post fields; only flags given are sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := domain.UpdatePostRequest{ID: args[0]}
			f := cmd.Flags()
			if f.Changed("title") {
				req.Title = &title
			}
			if f.Changed("content") {
				req.Content = &content
			}
			if f.Changed("category") {
				req.Category = &category
			}
			if f.Changed("image-url") {
				req.ImageURL = &imageURL
			}
			if f.Changed("tag") {
				req.Tags = &tags
			}
			if f.Changed("status") {
				s := domain.PostStatus(status)
				req.Status = &s
			}

			a, err := openApp(opts)
			if err != nil {
				return err
			}
			p, err := a.state.UpdatePost(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), p)
		},
	}
	f := cmd.Flags()
	f.StringVar(&title, "title", "", "post title")
	f.StringVar(&content, "content", "", "post body")
	f.StringVar(&category, "category", "", "category")
	f.StringVar(&imageURL, "image-url", "", "image URL")
	f.StringSliceVar(&tags, "tag", nil, "tag (repeatable, replaces all tags)")
	f.StringVar(&status, "status", "", "draft, published or archived")
	return cmd
}

func newPostDeleteCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(opts)
			if err != nil {
				return err
			}
			if err := a.state.DeletePost(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted", args[0])
			return nil
		},
	}
}

func newPostUploadCmd(opts *rootOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "upload-image <file>",
		Short: "Upload an image and print its URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			a, err := openApp(opts)
			if err != nil {
				return err
			}
			url, err := a.posts.UploadPostImage(cmd.Context(), filepath.Base(args[0]), f)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}
}

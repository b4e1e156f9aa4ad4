package state

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"ondemand-engine/internal/api"
	"ondemand-engine/internal/domain"
)

func errMessage(err error) string {
	return api.Message(err, api.MsgGeneric)
}

func trimmed(p *string) *string {
	if p == nil {
		return nil
	}
	t := strings.TrimSpace(*p)
	return &t
}

func (s *Store) LoginUser(ctx context.Context, mobile, password string) (domain.LoginResponse, error) {
	s.Dispatch(Action{Type: LoginPending})

	if errs := s.rules.ValidateLogin(mobile, password); !errs.OK() {
		s.Dispatch(rejected(LoginRejected, errs.First()))
		return domain.LoginResponse{}, errs
	}

	resp, err := s.auth.Login(ctx, strings.TrimSpace(mobile), password)
	if err != nil {
		s.Dispatch(rejected(LoginRejected, api.Message(err, api.MsgLoginFailed)))
		return domain.LoginResponse{}, err
	}
	s.Dispatch(Action{Type: LoginFulfilled, Payload: resp})
	return resp, nil
}

// LogoutUser always ends signed out. Storage failures are logged only.
func (s *Store) LogoutUser(ctx context.Context) {
	if err := s.auth.Logout(ctx); err != nil {
		s.log.Error("logout", slog.String("component", "state"), slog.String("error", err.Error()))
	}
	s.Dispatch(ClearUserProfileAction())
	s.Dispatch(Action{Type: LogoutFulfilled})
}

func (s *Store) CheckStoredAuth() *domain.Session {
	s.Dispatch(Action{Type: CheckAuthPending})
	sess := s.auth.CheckStoredAuth()
	s.Dispatch(Action{Type: CheckAuthFulfilled, Payload: sess})
	return sess
}

func (s *Store) FetchUserProfile(ctx context.Context) (domain.UserProfile, error) {
	s.Dispatch(Action{Type: FetchProfilePending})
	resp, err := s.auth.GetUserProfile(ctx)
	if err != nil {
		s.Dispatch(rejected(FetchProfileRejected, errMessage(err)))
		return domain.UserProfile{}, err
	}
	s.Dispatch(Action{Type: FetchProfileFulfilled, Payload: profileAt{Profile: resp.User, At: s.now()}})
	return resp.User, nil
}

func (s *Store) UpdateUserProfile(ctx context.Context, upd domain.ProfileUpdate) (domain.UserProfile, error) {
	s.Dispatch(Action{Type: UpdateProfilePending})
	resp, err := s.auth.UpdateUserProfile(ctx, upd)
	if err != nil {
		s.Dispatch(rejected(UpdateProfileRejected, errMessage(err)))
		return domain.UserProfile{}, err
	}
	s.Dispatch(Action{Type: UpdateProfileFulfilled, Payload: profileAt{Profile: resp.User, At: s.now()}})
	return resp.User, nil
}

// SetUserProfile replaces the profile locally and stamps it as fetched now.
func (s *Store) SetUserProfile(p domain.UserProfile) {
	s.Dispatch(SetUserProfileAction(p, s.now()))
}

// CreatePost validates first; invalid input never reaches the network.
func (s *Store) CreatePost(ctx context.Context, req domain.CreatePostRequest) (domain.Post, error) {
	s.Dispatch(Action{Type: CreatePostPending})

	if errs := s.rules.ValidatePost(req); !errs.OK() {
		s.Dispatch(rejected(CreatePostRejected, errs.First()))
		return domain.Post{}, errs
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	req.ImageURL = strings.TrimSpace(req.ImageURL)
	resp, err := s.posts.CreatePost(ctx, req)
	if err != nil {
		s.Dispatch(rejected(CreatePostRejected, errMessage(err)))
		return domain.Post{}, err
	}
	s.Dispatch(Action{Type: CreatePostFulfilled, Payload: resp.Post})
	return resp.Post, nil
}

func (s *Store) FetchPosts(ctx context.Context, q domain.PostQuery) (domain.PostsPage, error) {
	return s.fetchPage(ctx, q, s.posts.GetPosts, FetchPostsPending, FetchPostsFulfilled, FetchPostsRejected)
}

func (s *Store) FetchUserPosts(ctx context.Context, q domain.PostQuery) (domain.PostsPage, error) {
	return s.fetchPage(ctx, q, s.posts.GetUserPosts, FetchUserPostsPending, FetchUserPostsFulfilled, FetchUserPostsRejected)
}

func (s *Store) fetchPage(
	ctx context.Context,
	q domain.PostQuery,
	get func(context.Context, domain.PostQuery) (domain.PostsPage, error),
	pending, fulfilled, rejectedType string,
) (domain.PostsPage, error) {
	s.Dispatch(Action{Type: pending})
	page, err := get(ctx, q)
	if err != nil {
		s.Dispatch(rejected(rejectedType, errMessage(err)))
		return domain.PostsPage{}, err
	}
	s.Dispatch(Action{Type: fulfilled, Payload: page})
	return page, nil
}

func (s *Store) FetchPostByID(ctx context.Context, id string) (domain.Post, error) {
	s.Dispatch(Action{Type: FetchPostPending})
	p, err := s.posts.GetPostByID(ctx, id)
	if err != nil {
		s.Dispatch(rejected(FetchPostRejected, errMessage(err)))
		return domain.Post{}, err
	}
	s.Dispatch(Action{Type: FetchPostFulfilled, Payload: p})
	return p, nil
}

func (s *Store) UpdatePost(ctx context.Context, req domain.UpdatePostRequest) (domain.Post, error) {
	s.Dispatch(Action{Type: UpdatePostPending})

	if errs := s.rules.ValidatePostUpdate(req); !errs.OK() {
		s.Dispatch(rejected(UpdatePostRejected, errs.First()))
		return domain.Post{}, errs
	}

	req.Title = trimmed(req.Title)
	req.Content = trimmed(req.Content)
	req.ImageURL = trimmed(req.ImageURL)
	resp, err := s.posts.UpdatePost(ctx, req)
	if err != nil {
		s.Dispatch(rejected(UpdatePostRejected, errMessage(err)))
		return domain.Post{}, err
	}
	s.Dispatch(Action{Type: UpdatePostFulfilled, Payload: resp.Post})
	return resp.Post, nil
}

func (s *Store) DeletePost(ctx context.Context, id string) error {
	s.Dispatch(Action{Type: DeletePostPending})
	if _, err := s.posts.DeletePost(ctx, id); err != nil {
		s.Dispatch(rejected(DeletePostRejected, errMessage(err)))
		return err
	}
	s.Dispatch(Action{Type: DeletePostFulfilled, Payload: id})
	return nil
}

// Bootstrap restores a stored session and, when there is one, loads the
// profile and first posts page concurrently. Each failure is recorded in its
// own slice; the returned error joins them for logging.
func (s *Store) Bootstrap(ctx context.Context) error {
	if s.CheckStoredAuth() == nil {
		return nil
	}

	var (
		g          errgroup.Group
		profileErr error
		postsErr   error
	)
	g.Go(func() error {
		_, profileErr = s.FetchUserProfile(ctx)
		return nil
	})
	g.Go(func() error {
		_, postsErr = s.FetchPosts(ctx, s.firstPage)
		return nil
	})
	_ = g.Wait()
	return errors.Join(profileErr, postsErr)
}

package state

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"ondemand-engine/internal/domain"
	"ondemand-engine/internal/events"
	"ondemand-engine/internal/form"
)

type AuthAPI interface {
	Login(ctx context.Context, mobile, password string) (domain.LoginResponse, error)
	Logout(ctx context.Context) error
	CheckStoredAuth() *domain.Session
	GetUserProfile(ctx context.Context) (domain.UserProfileResponse, error)
	UpdateUserProfile(ctx context.Context, upd domain.ProfileUpdate) (domain.UserProfileResponse, error)
}

type PostAPI interface {
	CreatePost(ctx context.Context, req domain.CreatePostRequest) (domain.CreatePostResponse, error)
	GetPosts(ctx context.Context, q domain.PostQuery) (domain.PostsPage, error)
	GetUserPosts(ctx context.Context, q domain.PostQuery) (domain.PostsPage, error)
	GetPostByID(ctx context.Context, id string) (domain.Post, error)
	UpdatePost(ctx context.Context, req domain.UpdatePostRequest) (domain.CreatePostResponse, error)
	DeletePost(ctx context.Context, id string) (string, error)
}

type Publisher interface {
	Publish(evt string)
}

type Store struct {
	mu    sync.RWMutex
	state State

	auth  AuthAPI
	posts PostAPI
	rules form.Rules
	pub   Publisher
	now   func() time.Time
	log   *slog.Logger

	firstPage domain.PostQuery
}

type Option func(*Store)

func WithRules(r form.Rules) Option { return func(s *Store) { s.rules = r } }
func WithPublisher(p Publisher) Option { return func(s *Store) { s.pub = p } }
func WithClock(now func() time.Time) Option { return func(s *Store) { s.now = now } }
func WithLogger(l *slog.Logger) Option { return func(s *Store) { s.log = l } }

// WithFirstPage sets the query Bootstrap uses for the initial posts load.
func WithFirstPage(q domain.PostQuery) Option { return func(s *Store) { s.firstPage = q } }

func New(auth AuthAPI, posts PostAPI, opts ...Option) *Store {
	s := &Store{
		state:     initialState(),
		auth:      auth,
		posts:     posts,
		rules:     form.DefaultRules(),
		now:       time.Now,
		log:       slog.Default(),
		firstPage: domain.PostQuery{Page: 1, Limit: 10},
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Dispatch runs a through every slice reducer and announces the change.
func (s *Store) Dispatch(a Action) {
	s.mu.Lock()
	s.state = reduce(s.state, a)
	s.mu.Unlock()

	if s.pub != nil {
		s.pub.Publish(events.MakeEventAt(s.now(), "", events.TypeStateChanged, map[string]string{"action": a.Type}))
	}
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.clone()
}

func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Auth.IsAuthenticated
}

// HandleUnauthorized resets auth and profile after the server rejected the
// stored token. Storage is already cleared by the api client by then.
// A 401 while signed out (a failed login) is not an expiry and is ignored.
func (s *Store) HandleUnauthorized() {
	if !s.Authenticated() {
		return
	}
	s.log.Warn("session expired", slog.String("component", "state"))
	s.Dispatch(ResetAuthAction())
	s.Dispatch(ClearUserProfileAction())
	if s.pub != nil {
		s.pub.Publish(events.MakeEventAt(s.now(), "", events.TypeSessionExpired, nil))
	}
}

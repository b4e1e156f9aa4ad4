// Package state holds the client's central state. Slices change only by
// dispatching actions through their reducers.
package state

import (
	"time"

	"ondemand-engine/internal/domain"
)

type AuthState struct {
	User            *domain.User `json:"user"`
	Token           string       `json:"-"`
	IsLoading       bool         `json:"isLoading"`
	Error           string       `json:"error,omitempty"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

type UserState struct {
	Profile     *domain.UserProfile `json:"profile"`
	IsLoading   bool                `json:"isLoading"`
	Error       string              `json:"error,omitempty"`
	LastFetched *time.Time          `json:"lastFetched,omitempty"`
}

type PostState struct {
	Posts        []domain.Post      `json:"posts"`
	CurrentPost  *domain.Post       `json:"currentPost"`
	IsLoading    bool               `json:"isLoading"`
	IsSubmitting bool               `json:"isSubmitting"`
	Error        string             `json:"error,omitempty"`
	Pagination   *domain.Pagination `json:"pagination"`
}

type State struct {
	Auth AuthState `json:"auth"`
	User UserState `json:"user"`
	Post PostState `json:"post"`
}

func initialState() State {
	return State{Post: PostState{Posts: []domain.Post{}}}
}

func (s State) clone() State {
	out := s
	if s.Auth.User != nil {
		u := *s.Auth.User
		out.Auth.User = &u
	}
	if s.User.Profile != nil {
		p := *s.User.Profile
		out.User.Profile = &p
	}
	if s.User.LastFetched != nil {
		t := *s.User.LastFetched
		out.User.LastFetched = &t
	}
	out.Post.Posts = make([]domain.Post, len(s.Post.Posts))
	for i, p := range s.Post.Posts {
		out.Post.Posts[i] = clonePost(p)
	}
	if s.Post.CurrentPost != nil {
		p := clonePost(*s.Post.CurrentPost)
		out.Post.CurrentPost = &p
	}
	if s.Post.Pagination != nil {
		pg := *s.Post.Pagination
		out.Post.Pagination = &pg
	}
	return out
}

func clonePost(p domain.Post) domain.Post {
	if p.Tags != nil {
		p.Tags = append([]string(nil), p.Tags...)
	}
	return p
}

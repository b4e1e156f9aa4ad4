package state

import "ondemand-engine/internal/domain"

const (
	defaultLoginError         = "Login failed"
	defaultFetchProfileError  = "Failed to fetch user profile"
	defaultUpdateProfileError = "Failed to update user profile"
	defaultCreatePostError    = "Failed to create post"
	defaultFetchPostsError    = "Failed to fetch posts"
	defaultFetchUserPostError = "Failed to fetch user posts"
	defaultFetchPostError     = "Failed to fetch post"
	defaultUpdatePostError    = "Failed to update post"
	defaultDeletePostError    = "Failed to delete post"
)

func orDefault(msg, def string) string {
	if msg == "" {
		return def
	}
	return msg
}

func reduce(s State, a Action) State {
	s.Auth = reduceAuth(s.Auth, a)
	s.User = reduceUser(s.User, a)
	s.Post = reducePost(s.Post, a)
	return s
}

func reduceAuth(s AuthState, a Action) AuthState {
	switch a.Type {
	case LoginPending:
		s.IsLoading = true
		s.Error = ""
	case LoginFulfilled:
		resp, _ := a.Payload.(domain.LoginResponse)
		u := resp.User
		s.IsLoading = false
		s.User = &u
		s.Token = resp.Token
		s.IsAuthenticated = true
		s.Error = ""
	case LoginRejected:
		s.IsLoading = false
		s.Error = orDefault(payloadString(a), defaultLoginError)
		s.IsAuthenticated = false

	case LogoutFulfilled:
		s.User = nil
		s.Token = ""
		s.IsAuthenticated = false
		s.Error = ""

	case CheckAuthPending:
		s.IsLoading = true
	case CheckAuthFulfilled:
		s.IsLoading = false
		if sess, ok := a.Payload.(*domain.Session); ok && sess != nil {
			u := sess.User
			s.User = &u
			s.Token = sess.Token
			s.IsAuthenticated = true
		}
	case CheckAuthRejected:
		s.IsLoading = false

	case ClearError:
		s.Error = ""
	case ResetAuth:
		s = AuthState{}
	}
	return s
}

func reduceUser(s UserState, a Action) UserState {
	switch a.Type {
	case FetchProfilePending, UpdateProfilePending:
		s.IsLoading = true
		s.Error = ""
	case FetchProfileFulfilled, UpdateProfileFulfilled, SetUserProfile:
		pa, _ := a.Payload.(profileAt)
		p := pa.Profile
		at := pa.At
		s.Profile = &p
		s.LastFetched = &at
		if a.Type != SetUserProfile {
			s.IsLoading = false
			s.Error = ""
		}
	case FetchProfileRejected:
		s.IsLoading = false
		s.Error = orDefault(payloadString(a), defaultFetchProfileError)
	case UpdateProfileRejected:
		s.IsLoading = false
		s.Error = orDefault(payloadString(a), defaultUpdateProfileError)

	case ClearUserError:
		s.Error = ""
	case ClearUserProfile:
		s.Profile = nil
		s.Error = ""
		s.LastFetched = nil
	}
	return s
}

func reducePost(s PostState, a Action) PostState {
	switch a.Type {
	case CreatePostPending, UpdatePostPending:
		s.IsSubmitting = true
		s.Error = ""
	case FetchPostsPending, FetchUserPostsPending, FetchPostPending, DeletePostPending:
		s.IsLoading = true
		s.Error = ""

	case CreatePostFulfilled:
		p, _ := a.Payload.(domain.Post)
		s.IsSubmitting = false
		s.Posts = append([]domain.Post{p}, s.Posts...)
		s.Error = ""
	case FetchPostsFulfilled, FetchUserPostsFulfilled:
		page, _ := a.Payload.(domain.PostsPage)
		s.IsLoading = false
		s.Posts = page.Posts
		if s.Posts == nil {
			s.Posts = []domain.Post{}
		}
		pg := page.Pagination
		s.Pagination = &pg
		s.Error = ""
	case FetchPostFulfilled:
		p, _ := a.Payload.(domain.Post)
		s.IsLoading = false
		s.CurrentPost = &p
		s.Error = ""
	case UpdatePostFulfilled:
		p, _ := a.Payload.(domain.Post)
		s.IsSubmitting = false
		posts := make([]domain.Post, len(s.Posts))
		copy(posts, s.Posts)
		for i := range posts {
			if posts[i].ID == p.ID {
				posts[i] = p
				break
			}
		}
		s.Posts = posts
		if s.CurrentPost != nil && s.CurrentPost.ID == p.ID {
			s.CurrentPost = &p
		}
		s.Error = ""
	case DeletePostFulfilled:
		id := payloadString(a)
		s.IsLoading = false
		kept := make([]domain.Post, 0, len(s.Posts))
		for _, p := range s.Posts {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		s.Posts = kept
		if s.CurrentPost != nil && s.CurrentPost.ID == id {
			s.CurrentPost = nil
		}
		s.Error = ""

	case CreatePostRejected:
		s.IsSubmitting = false
		s.Error = orDefault(payloadString(a), defaultCreatePostError)
	case UpdatePostRejected:
		s.IsSubmitting = false
		s.Error = orDefault(payloadString(a), defaultUpdatePostError)
	case FetchPostsRejected:
		s.IsLoading = false
		s.Error = orDefault(payloadString(a), defaultFetchPostsError)
	case FetchUserPostsRejected:
		s.IsLoading = false
		s.Error = orDefault(payloadString(a), defaultFetchUserPostError)
	case FetchPostRejected:
		s.IsLoading = false
		s.Error = orDefault(payloadString(a), defaultFetchPostError)
	case DeletePostRejected:
		s.IsLoading = false
		s.Error = orDefault(payloadString(a), defaultDeletePostError)

	case ClearPostError:
		s.Error = ""
	case ClearCurrentPost:
		s.CurrentPost = nil
	case SetCurrentPost:
		p, _ := a.Payload.(domain.Post)
		s.CurrentPost = &p
	case ClearPosts:
		s.Posts = []domain.Post{}
		s.Pagination = nil
	case ResetPostState:
		s = PostState{Posts: []domain.Post{}}
	}
	return s
}

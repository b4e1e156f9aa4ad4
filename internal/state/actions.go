package state

import (
	"time"

	"ondemand-engine/internal/domain"
)

const (
	LoginPending   = "auth/loginUser/pending"
	LoginFulfilled = "auth/loginUser/fulfilled"
	LoginRejected  = "auth/loginUser/rejected"

	LogoutFulfilled = "auth/logoutUser/fulfilled"

	CheckAuthPending   = "auth/checkStoredAuth/pending"
	CheckAuthFulfilled = "auth/checkStoredAuth/fulfilled"
	CheckAuthRejected  = "auth/checkStoredAuth/rejected"

	ClearError = "auth/clearError"
	ResetAuth  = "auth/resetAuth"

	FetchProfilePending   = "user/fetchUserProfile/pending"
	FetchProfileFulfilled = "user/fetchUserProfile/fulfilled"
	FetchProfileRejected  = "user/fetchUserProfile/rejected"

	UpdateProfilePending   = "user/updateUserProfile/pending"
	UpdateProfileFulfilled = "user/updateUserProfile/fulfilled"
	UpdateProfileRejected  = "user/updateUserProfile/rejected"

	ClearUserError   = "user/clearUserError"
	ClearUserProfile = "user/clearUserProfile"
	SetUserProfile   = "user/setUserProfile"

	CreatePostPending   = "post/createPost/pending"
	CreatePostFulfilled = "post/createPost/fulfilled"
	CreatePostRejected  = "post/createPost/rejected"

	FetchPostsPending   = "post/fetchPosts/pending"
	FetchPostsFulfilled = "post/fetchPosts/fulfilled"
	FetchPostsRejected  = "post/fetchPosts/rejected"

	FetchUserPostsPending   = "post/fetchUserPosts/pending"
	FetchUserPostsFulfilled = "post/fetchUserPosts/fulfilled"
	FetchUserPostsRejected  = "post/fetchUserPosts/rejected"

	FetchPostPending   = "post/fetchPostById/pending"
	FetchPostFulfilled = "post/fetchPostById/fulfilled"
	FetchPostRejected  = "post/fetchPostById/rejected"

	UpdatePostPending   = "post/updatePost/pending"
	UpdatePostFulfilled = "post/updatePost/fulfilled"
	UpdatePostRejected  = "post/updatePost/rejected"

	DeletePostPending   = "post/deletePost/pending"
	DeletePostFulfilled = "post/deletePost/fulfilled"
	DeletePostRejected  = "post/deletePost/rejected"

	ClearPostError   = "post/clearPostError"
	ClearCurrentPost = "post/clearCurrentPost"
	SetCurrentPost   = "post/setCurrentPost"
	ClearPosts       = "post/clearPosts"
	ResetPostState   = "post/resetPostState"
)

// Action is a named state transition. Payload type depends on Type:
// string for rejections and deletions, the response or entity otherwise.
type Action struct {
	Type    string `json:"type"`
	Payload any    `json:"-"`
}

// profileAt pairs a profile with the time it was obtained, so reducers stay
// free of clock reads.
type profileAt struct {
	Profile domain.UserProfile
	At      time.Time
}

func rejected(typ, msg string) Action { return Action{Type: typ, Payload: msg} }

func payloadString(a Action) string {
	s, _ := a.Payload.(string)
	return s
}

// Creators for the synchronous actions callers may dispatch directly.

func ClearErrorAction() Action { return Action{Type: ClearError} }
func ResetAuthAction() Action { return Action{Type: ResetAuth} }
func ClearUserErrorAction() Action { return Action{Type: ClearUserError} }
func ClearUserProfileAction() Action { return Action{Type: ClearUserProfile} }
func ClearPostErrorAction() Action { return Action{Type: ClearPostError} }
func ClearCurrentPostAction() Action { return Action{Type: ClearCurrentPost} }
func ClearPostsAction() Action { return Action{Type: ClearPosts} }
func ResetPostStateAction() Action { return Action{Type: ResetPostState} }

func SetUserProfileAction(p domain.UserProfile, at time.Time) Action {
	return Action{Type: SetUserProfile, Payload: profileAt{Profile: p, At: at}}
}

func SetCurrentPostAction(p domain.Post) Action {
	return Action{Type: SetCurrentPost, Payload: p}
}

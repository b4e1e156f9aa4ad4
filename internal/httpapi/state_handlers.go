package httpapi

import (
	"net/http"

	"ondemand-engine/internal/domain"
	"ondemand-engine/internal/state"
)

type StateHandler struct {
	State *state.Store
}

func (h StateHandler) Snapshot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.State.Snapshot())
}

// syncActions are the payload-free actions a shell may dispatch directly.
var syncActions = map[string]func() state.Action{
	state.ClearError:       state.ClearErrorAction,
	state.ResetAuth:        state.ResetAuthAction,
	state.ClearUserError:   state.ClearUserErrorAction,
	state.ClearUserProfile: state.ClearUserProfileAction,
	state.ClearPostError:   state.ClearPostErrorAction,
	state.ClearCurrentPost: state.ClearCurrentPostAction,
	state.ClearPosts:       state.ClearPostsAction,
	state.ResetPostState:   state.ResetPostStateAction,
}

type dispatchReq struct {
	Type string `json:"type"`
}

func (h StateHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	var req dispatchReq
	if err := decodeBody(w, r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	mk, ok := syncActions[req.Type]
	if !ok {
		WriteError(w, r, http.StatusBadRequest, "unknown_action", "unknown or non-dispatchable action: "+req.Type)
		return
	}
	h.State.Dispatch(mk())
	writeJSON(w, h.State.Snapshot())
}

type loginResp struct {
	User    domain.User `json:"user"`
	Message string      `json:"message,omitempty"`
}

func (h StateHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := decodeBody(w, r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	resp, err := h.State.LoginUser(r.Context(), req.Mobile, req.Password)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, loginResp{User: resp.User, Message: resp.Message})
}

func (h StateHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.State.LogoutUser(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

func (h StateHandler) Check(w http.ResponseWriter, r *http.Request) {
	sess := h.State.CheckStoredAuth()
	out := map[string]any{"authenticated": sess != nil}
	if sess != nil {
		out["user"] = sess.User
	}
	writeJSON(w, out)
}

func (h StateHandler) ClearError(w http.ResponseWriter, r *http.Request) {
	h.State.Dispatch(state.ClearErrorAction())
	w.WriteHeader(http.StatusNoContent)
}

func (h StateHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.State.FetchUserProfile(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, p)
}

func (h StateHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var upd domain.ProfileUpdate
	if err := decodeBody(w, r, &upd); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	p, err := h.State.UpdateUserProfile(r.Context(), upd)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, p)
}

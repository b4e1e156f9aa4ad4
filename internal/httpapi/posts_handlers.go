package httpapi

import (
	"errors"
	"net/http"
	"path/filepath"

	"ondemand-engine/internal/domain"
	"ondemand-engine/internal/state"
)

const maxImageBytes = 10 << 20

type PostsHandler struct {
	State    *state.Store
	Uploader ImageUploader
}

func postQueryFrom(r *http.Request) (domain.PostQuery, error) {
	var q domain.PostQuery
	var err error
	if q.Page, err = queryInt(r, "page"); err != nil {
		return q, err
	}
	if q.Limit, err = queryInt(r, "limit"); err != nil {
		return q, err
	}
	v := r.URL.Query()
	q.Category = v.Get("category")
	q.Search = v.Get("search")
	if s := domain.PostStatus(v.Get("status")); s != "" {
		if !s.Valid() {
			return q, errInvalidStatus
		}
		q.Status = s
	}
	return q, nil
}

var errInvalidStatus = errors.New("status must be draft, published or archived")

// List serves the public feed, or the caller's own posts with ?mine=1.
func (h PostsHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := postQueryFrom(r)
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_query", err.Error())
		return
	}

	var page domain.PostsPage
	if queryBool(r, "mine") {
		page, err = h.State.FetchUserPosts(r.Context(), q)
	} else {
		page, err = h.State.FetchPosts(r.Context(), q)
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if page.Posts == nil {
		page.Posts = []domain.Post{}
	}
	writeJSON(w, page)
}

func (h PostsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreatePostRequest
	if err := decodeBody(w, r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	p, err := h.State.CreatePost(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, p)
}

func (h PostsHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.State.FetchPostByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, p)
}

func (h PostsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdatePostRequest
	if err := decodeBody(w, r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}
	req.ID = r.PathValue("id")
	p, err := h.State.UpdatePost(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, p)
}

func (h PostsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.State.DeletePost(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UploadImage forwards multipart field "image" to the marketplace.
func (h PostsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	f, hdr, err := r.FormFile("image")
	if err != nil {
		WriteError(w, r, http.StatusBadRequest, "invalid_upload", "multipart field \"image\" is required")
		return
	}
	defer f.Close()

	url, err := h.Uploader.UploadPostImage(r.Context(), filepath.Base(hdr.Filename), f)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, map[string]string{"imageUrl": url})
}

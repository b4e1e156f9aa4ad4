package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"ondemand-engine/internal/config"
	"ondemand-engine/internal/domain"
	"ondemand-engine/internal/secrets"
)

func newTestClient(t *testing.T, h http.Handler) (*Client, *secrets.Store) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	kv, err := secrets.NewFileKV(filepath.Join(t.TempDir(), "session.json"))
	if err != nil {
		t.Fatalf("NewFileKV: %v", err)
	}
	store := secrets.NewStore(kv)

	cfg := config.Default()
	cfg.API.BaseURL = srv.URL
	cfg.API.MaxRPS = 0
	return New(cfg, store), store
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestLoginStoresSession(t *testing.T) {
	c, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/users/login" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var req domain.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Mobile != "5551234567" || req.Password != "secret1" {
			t.Errorf("body = %+v", req)
		}
		writeJSON(w, 200, map[string]any{
			"user":    map[string]any{"id": "u1", "mobile": "5551234567"},
			"token":   "tok-1",
			"message": "ok",
		})
	}))

	resp, err := NewAuthService(c).Login(context.Background(), "5551234567", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if resp.Token != "tok-1" || resp.User.ID != "u1" {
		t.Fatalf("resp = %+v", resp)
	}
	s, err := store.Stored()
	if err != nil || s == nil {
		t.Fatalf("Stored = %v, %v", s, err)
	}
	if s.Token != "tok-1" || s.User.Mobile != "5551234567" {
		t.Fatalf("stored session = %+v", s)
	}
}

func TestLoginServerMessageAndFallback(t *testing.T) {
	cases := []struct {
		name string
		body any
		want string
	}{
		{"server message", map[string]string{"message": "Invalid mobile or password"}, "Invalid mobile or password"},
		{"no message", map[string]string{}, MsgLoginFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(w, http.StatusBadRequest, tc.body)
			}))
			_, err := NewAuthService(c).Login(context.Background(), "5551234567", "secret1")
			var se *ServerError
			if !errors.As(err, &se) {
				t.Fatalf("err = %v, want *ServerError", err)
			}
			if se.Message != tc.want || se.Status != http.StatusBadRequest {
				t.Fatalf("got %d %q", se.Status, se.Message)
			}
			if s, _ := store.Stored(); s != nil {
				t.Fatalf("session stored after failed login")
			}
		})
	}
}

func TestBearerTokenAttached(t *testing.T) {
	var gotAuth, gotReqID string
	c, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-ID")
		writeJSON(w, 200, map[string]any{"user": map[string]any{"id": "u1", "username": "ann"}})
	}))
	if err := store.Save("tok-9", domain.User{ID: "u1"}); err != nil {
		t.Fatal(err)
	}

	resp, err := NewAuthService(c).GetUserProfile(context.Background())
	if err != nil {
		t.Fatalf("GetUserProfile: %v", err)
	}
	if resp.User.Username != "ann" {
		t.Fatalf("profile = %+v", resp.User)
	}
	if gotAuth != "Bearer tok-9" {
		t.Fatalf("Authorization = %q", gotAuth)
	}
	if gotReqID == "" {
		t.Fatal("missing X-Request-ID")
	}
}

func TestNoTokenNoHeader(t *testing.T) {
	var gotAuth string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		writeJSON(w, 200, map[string]any{"posts": []any{}, "pagination": map[string]int{"page": 1}})
	}))
	if _, err := NewPostService(c).GetPosts(context.Background(), domain.PostQuery{}); err != nil {
		t.Fatal(err)
	}
	if gotAuth != "" {
		t.Fatalf("Authorization = %q, want none", gotAuth)
	}
}

func TestUnauthorizedClearsSession(t *testing.T) {
	c, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Token expired"})
	}))
	if err := store.Save("stale", domain.User{ID: "u1"}); err != nil {
		t.Fatal(err)
	}
	called := false
	c.SetUnauthorizedHandler(func() { called = true })

	_, err := NewAuthService(c).GetUserProfile(context.Background())
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
	if Message(err, "") != "Token expired" {
		t.Fatalf("message = %q", Message(err, ""))
	}
	if tok, _ := store.Token(); tok != "" {
		t.Fatalf("token survived 401: %q", tok)
	}
	if u, _ := store.CurrentUser(); u != nil {
		t.Fatalf("user survived 401: %+v", u)
	}
	if !called {
		t.Fatal("unauthorized handler not called")
	}
}

func TestNetworkError(t *testing.T) {
	kv, _ := secrets.NewFileKV(filepath.Join(t.TempDir(), "session.json"))
	cfg := config.Default()
	cfg.API.BaseURL = "http://127.0.0.1:1"
	cfg.API.MaxRPS = 0
	c := New(cfg, secrets.NewStore(kv))

	_, err := NewPostService(c).GetPosts(context.Background(), domain.PostQuery{})
	if !errors.Is(err, ErrNetwork) {
		t.Fatalf("err = %v, want ErrNetwork", err)
	}
	if err.Error() != MsgNetwork {
		t.Fatalf("message = %q", err.Error())
	}
	var se *ServerError
	if errors.As(err, &se) {
		t.Fatal("network failure classified as server error")
	}
}

func TestPostQueryStrings(t *testing.T) {
	var got []string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = append(got, r.URL.Query().Encode())
		writeJSON(w, 200, map[string]any{"posts": []any{}})
	}))
	ps := NewPostService(c)
	q := domain.PostQuery{Page: 2, Limit: 10, Category: "cleaning", Status: domain.PostPublished, Search: "tap"}

	if _, err := ps.GetPosts(context.Background(), q); err != nil {
		t.Fatal(err)
	}
	if _, err := ps.GetUserPosts(context.Background(), q); err != nil {
		t.Fatal(err)
	}
	if _, err := ps.GetPosts(context.Background(), domain.PostQuery{}); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"category=cleaning&limit=10&page=2&search=tap&status=published",
		"author=me&limit=10&page=2&status=published",
		"",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("query %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPostCRUDPaths(t *testing.T) {
	var calls []string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls = append(calls, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodPut:
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			if _, ok := body["id"]; ok {
				t.Errorf("update body carries id: %v", body)
			}
			if body["title"] != "New title" {
				t.Errorf("update body = %v", body)
			}
			writeJSON(w, 200, map[string]any{"post": map[string]any{"id": "p1", "title": "New title"}, "message": "updated"})
		case http.MethodDelete:
			writeJSON(w, 200, map[string]string{"message": "deleted"})
		case http.MethodGet:
			writeJSON(w, 200, map[string]any{"post": map[string]any{"id": "p1", "title": "Old"}})
		default:
			writeJSON(w, 201, map[string]any{"post": map[string]any{"id": "p1", "title": "Old"}, "message": "created"})
		}
	}))
	ps := NewPostService(c)
	ctx := context.Background()

	created, err := ps.CreatePost(ctx, domain.CreatePostRequest{Title: "Old", Content: "long enough content"})
	if err != nil || created.Post.ID != "p1" {
		t.Fatalf("CreatePost = %+v, %v", created, err)
	}
	p, err := ps.GetPostByID(ctx, "p1")
	if err != nil || p.Title != "Old" {
		t.Fatalf("GetPostByID = %+v, %v", p, err)
	}
	title := "New title"
	upd, err := ps.UpdatePost(ctx, domain.UpdatePostRequest{ID: "p1", Title: &title})
	if err != nil || upd.Post.Title != title {
		t.Fatalf("UpdatePost = %+v, %v", upd, err)
	}
	msg, err := ps.DeletePost(ctx, "p1")
	if err != nil || msg != "deleted" {
		t.Fatalf("DeletePost = %q, %v", msg, err)
	}

	want := []string{"POST /post/add", "GET /posts/p1", "PUT /posts/p1", "DELETE /posts/p1"}
	if strings.Join(calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", calls, want)
	}
}

func TestFallbackMessages(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	ps := NewPostService(c)
	ctx := context.Background()

	_, err := ps.GetPostByID(ctx, "x")
	if Message(err, "") != msgFetchPost {
		t.Errorf("GetPostByID message = %q", Message(err, ""))
	}
	_, err = ps.DeletePost(ctx, "x")
	if Message(err, "") != msgDeletePost {
		t.Errorf("DeletePost message = %q", Message(err, ""))
	}
	_, err = NewAuthService(c).UpdateUserProfile(ctx, domain.ProfileUpdate{})
	if Message(err, "") != MsgGeneric {
		t.Errorf("UpdateUserProfile message = %q", Message(err, ""))
	}
}

func TestUploadPostImage(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
			t.Errorf("content type = %q", r.Header.Get("Content-Type"))
		}
		f, hdr, err := r.FormFile("image")
		if err != nil {
			t.Errorf("FormFile: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		b, _ := io.ReadAll(f)
		if hdr.Filename != "sink.jpg" || string(b) != "jpegbytes" {
			t.Errorf("got %q %q", hdr.Filename, b)
		}
		writeJSON(w, 200, map[string]string{"imageUrl": "https://cdn.example/sink.jpg"})
	}))

	u, err := NewPostService(c).UploadPostImage(context.Background(), "sink.jpg", strings.NewReader("jpegbytes"))
	if err != nil {
		t.Fatalf("UploadPostImage: %v", err)
	}
	if u != "https://cdn.example/sink.jpg" {
		t.Fatalf("url = %q", u)
	}
}

func TestLogoutClearsEvenWhenServerFails(t *testing.T) {
	c, store := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	if err := store.Save("tok", domain.User{ID: "u1"}); err != nil {
		t.Fatal(err)
	}
	a := NewAuthService(c)
	if err := a.Logout(context.Background()); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if a.CheckStoredAuth() != nil {
		t.Fatal("session survived logout")
	}
	if a.Token() != "" || a.CurrentUser() != nil {
		t.Fatal("token or user survived logout")
	}
}

func TestHostLimiterDisabled(t *testing.T) {
	hl := NewHostLimiter(0, 0)
	if hl.Enabled() {
		t.Fatal("zero rate should disable limiter")
	}
	if err := hl.WaitURL(context.Background(), "http://x"); err != nil {
		t.Fatal(err)
	}
	var nilHL *HostLimiter
	if nilHL.Enabled() {
		t.Fatal("nil limiter enabled")
	}
}

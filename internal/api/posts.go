package api

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"ondemand-engine/internal/domain"
)

const (
	msgCreatePost    = "Failed to create post"
	msgFetchPosts    = "Failed to fetch posts"
	msgFetchPost     = "Failed to fetch post"
	msgUpdatePost    = "Failed to update post"
	msgDeletePost    = "Failed to delete post"
	msgFetchUserPost = "Failed to fetch user posts"
	msgUploadImage   = "Failed to upload image"
)

type PostService struct {
	c *Client
}

func NewPostService(c *Client) *PostService { return &PostService{c: c} }

func (p *PostService) CreatePost(ctx context.Context, req domain.CreatePostRequest) (domain.CreatePostResponse, error) {
	var out domain.CreatePostResponse
	err := p.c.do(ctx, call{
		method:   http.MethodPost,
		path:     p.c.eps.PostAdd,
		body:     req,
		out:      &out,
		fallback: msgCreatePost,
	})
	return out, err
}

func (p *PostService) GetPosts(ctx context.Context, q domain.PostQuery) (domain.PostsPage, error) {
	var out domain.PostsPage
	err := p.c.do(ctx, call{
		method:   http.MethodGet,
		path:     p.c.eps.Posts,
		query:    postValues(q, true),
		out:      &out,
		fallback: msgFetchPosts,
	})
	return out, err
}

func (p *PostService) GetPostByID(ctx context.Context, id string) (domain.Post, error) {
	var out struct {
		Post domain.Post `json:"post"`
	}
	err := p.c.do(ctx, call{
		method:   http.MethodGet,
		path:     withID(p.c.eps.PostDetail, id),
		out:      &out,
		fallback: msgFetchPost,
	})
	return out.Post, err
}

// UpdatePost sends every field except the ID, which goes in the path.
func (p *PostService) UpdatePost(ctx context.Context, req domain.UpdatePostRequest) (domain.CreatePostResponse, error) {
	var out domain.CreatePostResponse
	err := p.c.do(ctx, call{
		method:   http.MethodPut,
		path:     withID(p.c.eps.PostUpdate, req.ID),
		body:     req,
		out:      &out,
		fallback: msgUpdatePost,
	})
	return out, err
}

func (p *PostService) DeletePost(ctx context.Context, id string) (string, error) {
	var out struct {
		Message string `json:"message"`
	}
	err := p.c.do(ctx, call{
		method:   http.MethodDelete,
		path:     withID(p.c.eps.PostDelete, id),
		out:      &out,
		fallback: msgDeletePost,
	})
	return out.Message, err
}

// GetUserPosts lists the caller's own posts. Category and search do not
// apply to this listing.
func (p *PostService) GetUserPosts(ctx context.Context, q domain.PostQuery) (domain.PostsPage, error) {
	v := postValues(q, false)
	v.Set("author", "me")

	var out domain.PostsPage
	err := p.c.do(ctx, call{
		method:   http.MethodGet,
		path:     p.c.eps.Posts,
		query:    v,
		out:      &out,
		fallback: msgFetchUserPost,
	})
	return out, err
}

// UploadPostImage sends one image as multipart form field "image" and
// returns the URL the server stored it under.
func (p *PostService) UploadPostImage(ctx context.Context, filename string, r io.Reader) (string, error) {
	var out struct {
		ImageURL string `json:"imageUrl"`
	}
	err := p.c.do(ctx, call{
		method:   http.MethodPost,
		path:     p.c.eps.UploadImage,
		file:     r,
		field:    "image",
		filename: filename,
		out:      &out,
		fallback: msgUploadImage,
	})
	return out.ImageURL, err
}

func postValues(q domain.PostQuery, full bool) url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if full && q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Status != "" {
		v.Set("status", string(q.Status))
	}
	if full && q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}

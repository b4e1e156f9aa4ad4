package domain

type PostStatus string

const (
	PostDraft     PostStatus = "draft"
	PostPublished PostStatus = "published"
	PostArchived  PostStatus = "archived"
)

func (s PostStatus) Valid() bool {
	switch s {
	case PostDraft, PostPublished, PostArchived:
		return true
	}
	return false
}

type Post struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	Author        string     `json:"author"`
	AuthorID      string     `json:"authorId"`
	ImageURL      string     `json:"imageUrl,omitempty"`
	Tags          []string   `json:"tags,omitempty"`
	Category      string     `json:"category,omitempty"`
	Status        PostStatus `json:"status"`
	CreatedAt     string     `json:"createdAt"`
	UpdatedAt     string     `json:"updatedAt"`
	LikesCount    int        `json:"likesCount,omitempty"`
	CommentsCount int        `json:"commentsCount,omitempty"`
}

// CreatePostRequest only allows draft or published; archiving is server-side.
type CreatePostRequest struct {
	Title    string     `json:"title"`
	Content  string     `json:"content"`
	ImageURL string     `json:"imageUrl,omitempty"`
	Tags     []string   `json:"tags,omitempty"`
	Category string     `json:"category,omitempty"`
	Status   PostStatus `json:"status,omitempty"`
}

type UpdatePostRequest struct {
	ID       string      `json:"-"`
	Title    *string     `json:"title,omitempty"`
	Content  *string     `json:"content,omitempty"`
	ImageURL *string     `json:"imageUrl,omitempty"`
	Tags     *[]string   `json:"tags,omitempty"`
	Category *string     `json:"category,omitempty"`
	Status   *PostStatus `json:"status,omitempty"`
}

type CreatePostResponse struct {
	Post    Post   `json:"post"`
	Message string `json:"message"`
}

type Pagination struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

type PostsPage struct {
	Posts      []Post     `json:"posts"`
	Pagination Pagination `json:"pagination"`
	Message    string     `json:"message,omitempty"`
}

// PostQuery maps onto the list endpoint's query string. Zero values are omitted.
type PostQuery struct {
	Page     int        `json:"page,omitempty"`
	Limit    int        `json:"limit,omitempty"`
	Category string     `json:"category,omitempty"`
	Status   PostStatus `json:"status,omitempty"`
	Search   string     `json:"search,omitempty"`
}

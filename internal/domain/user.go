package domain

// User is the identity record returned at login and kept in local storage.
type User struct {
	ID     string `json:"id"`
	Mobile string `json:"mobile"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
}

type UserProfile struct {
	ID        string `json:"id"`
	Mobile    string `json:"mobile"`
	Username  string `json:"username"`
	Name      string `json:"name,omitempty"`
	Email     string `json:"email,omitempty"`
	Avatar    string `json:"avatar,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

// ProfileUpdate carries only the fields the caller wants changed.
type ProfileUpdate struct {
	Username *string `json:"username,omitempty"`
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

type LoginRequest struct {
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

type LoginResponse struct {
	User    User   `json:"user"`
	Token   string `json:"token"`
	Message string `json:"message"`
}

type UserProfileResponse struct {
	User    UserProfile `json:"user"`
	Message string      `json:"message,omitempty"`
}

// Session is what local storage holds between runs.
type Session struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

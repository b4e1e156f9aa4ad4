package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"ondemand-engine/internal/domain"
)

type AuthService struct {
	c *Client
}

func NewAuthService(c *Client) *AuthService { return &AuthService{c: c} }

// Login posts the credentials and, on success, persists token and user
// before returning.
func (a *AuthService) Login(ctx context.Context, mobile, password string) (domain.LoginResponse, error) {
	var out domain.LoginResponse
	err := a.c.do(ctx, call{
		method:   http.MethodPost,
		path:     a.c.eps.Login,
		body:     domain.LoginRequest{Mobile: mobile, Password: password},
		out:      &out,
		fallback: MsgLoginFailed,
	})
	if err != nil {
		return domain.LoginResponse{}, err
	}
	if out.Token == "" {
		return domain.LoginResponse{}, &ServerError{Status: http.StatusOK, Message: MsgLoginFailed}
	}
	if err := a.c.session.Save(out.Token, out.User); err != nil {
		return domain.LoginResponse{}, fmt.Errorf("store session: %w", err)
	}
	a.c.log.Info("logged in", slog.String("component", "auth"), slog.String("user_id", out.User.ID))
	return out, nil
}

// Logout tells the server when it can and always clears local storage.
func (a *AuthService) Logout(ctx context.Context) error {
	if a.c.eps.Logout != "" {
		if tok, _ := a.c.session.Token(); tok != "" {
			if err := a.c.do(ctx, call{method: http.MethodPost, path: a.c.eps.Logout}); err != nil {
				a.c.log.Debug("server logout ignored", slog.String("component", "auth"), slog.String("error", err.Error()))
			}
		}
	}
	if err := a.c.session.Clear(); err != nil {
		return fmt.Errorf("logout: %w", err)
	}
	return nil
}

// CheckStoredAuth returns the persisted session, or nil when either half is
// missing or unreadable.
func (a *AuthService) CheckStoredAuth() *domain.Session {
	s, err := a.c.session.Stored()
	if err != nil {
		a.c.log.Error("check stored auth", slog.String("component", "auth"), slog.String("error", err.Error()))
		return nil
	}
	return s
}

func (a *AuthService) Token() string {
	tok, err := a.c.session.Token()
	if err != nil {
		a.c.log.Error("get token", slog.String("component", "auth"), slog.String("error", err.Error()))
		return ""
	}
	return tok
}

func (a *AuthService) CurrentUser() *domain.User {
	u, err := a.c.session.CurrentUser()
	if err != nil {
		a.c.log.Error("get current user", slog.String("component", "auth"), slog.String("error", err.Error()))
		return nil
	}
	return u
}

func (a *AuthService) GetUserProfile(ctx context.Context) (domain.UserProfileResponse, error) {
	var out domain.UserProfileResponse
	err := a.c.do(ctx, call{
		method:   http.MethodGet,
		path:     a.c.eps.UserProfile,
		out:      &out,
		fallback: MsgGeneric,
	})
	return out, err
}

func (a *AuthService) UpdateUserProfile(ctx context.Context, upd domain.ProfileUpdate) (domain.UserProfileResponse, error) {
	var out domain.UserProfileResponse
	err := a.c.do(ctx, call{
		method:   http.MethodPut,
		path:     a.c.eps.UserProfile,
		body:     upd,
		out:      &out,
		fallback: MsgGeneric,
	})
	return out, err
}

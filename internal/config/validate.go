package config

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate returns a normalized copy along with any problems found.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	out.API.BaseURL = strings.TrimRight(strings.TrimSpace(out.API.BaseURL), "/")
	out.Storage.Backend = strings.ToLower(strings.TrimSpace(out.Storage.Backend))
	if out.Storage.Backend == "" {
		out.Storage.Backend = BackendKeyring
	}

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	// api
	if out.API.BaseURL == "" {
		res.addErr("api.base_url is required")
	} else if u, err := url.Parse(out.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		res.addErr("api.base_url must be an absolute URL, got %q", out.API.BaseURL)
	} else if u.Scheme == "http" && !isLocalHost(u.Hostname()) {
		res.addWarn("api.base_url uses plain http for a non-local host; tokens will travel unencrypted.")
	}
	if out.API.TimeoutMS < 0 {
		res.addErr("api.timeout_ms must be >= 0")
	} else if out.API.TimeoutMS > 0 && out.API.TimeoutMS < 1000 {
		res.addWarn("api.timeout_ms is very low (%d) and most requests will time out.", out.API.TimeoutMS)
	}
	if out.API.MaxRPS < 0 {
		res.addErr("api.max_rps must be >= 0")
	}
	if out.API.MaxRPS > 0 && out.API.Burst <= 0 {
		res.addErr("api.burst must be > 0 when api.max_rps is set")
	}

	eps := map[string]string{
		"login":        out.API.Endpoints.Login,
		"user_profile": out.API.Endpoints.UserProfile,
		"posts":        out.API.Endpoints.Posts,
		"post_add":     out.API.Endpoints.PostAdd,
		"post_detail":  out.API.Endpoints.PostDetail,
		"post_update":  out.API.Endpoints.PostUpdate,
		"post_delete":  out.API.Endpoints.PostDelete,
	}
	for name, p := range eps {
		if !strings.HasPrefix(p, "/") {
			res.addErr("api.endpoints.%s must start with '/'", name)
		}
	}
	for name, p := range map[string]string{
		"post_detail": out.API.Endpoints.PostDetail,
		"post_update": out.API.Endpoints.PostUpdate,
		"post_delete": out.API.Endpoints.PostDelete,
	} {
		if !strings.Contains(p, ":id") {
			res.addErr("api.endpoints.%s must contain the :id placeholder", name)
		}
	}

	// storage
	switch out.Storage.Backend {
	case BackendKeyring:
		if strings.TrimSpace(out.Storage.KeyringService) == "" {
			res.addErr("storage.keyring_service is required when storage.backend=keyring")
		}
	case BackendFile:
		if strings.TrimSpace(out.Storage.File) == "" {
			res.addErr("storage.file is required when storage.backend=file")
		}
		res.addWarn("storage.backend=file keeps the auth token in a plain file under the data dir.")
	default:
		res.addErr("storage.backend must be %q or %q, got %q", BackendKeyring, BackendFile, out.Storage.Backend)
	}

	// validation bounds
	v := out.Validation
	if _, err := regexp.Compile(v.Mobile.Pattern); err != nil || v.Mobile.Pattern == "" {
		res.addErr("validation.mobile.pattern must be a valid regular expression")
	}
	checkRange := func(name string, lo, hi int) {
		if lo <= 0 {
			res.addErr("%s min_length must be > 0", name)
		}
		if hi < lo {
			res.addErr("%s max_length must be >= min_length", name)
		}
	}
	checkRange("validation.password", v.Password.MinLength, v.Password.MaxLength)
	checkRange("validation.post.title", v.Post.TitleMinLength, v.Post.TitleMaxLength)
	checkRange("validation.post.content", v.Post.ContentMinLength, v.Post.ContentMaxLength)
	if v.Post.MaxTags < 0 {
		res.addErr("validation.post.max_tags must be >= 0")
	}
	if v.Password.MinLength > 0 && v.Password.MinLength < 6 {
		res.addWarn("validation.password.min_length is below 6.")
	}

	if out.Sync.ProfileRefreshSeconds < 0 {
		res.addErr("sync.profile_refresh_seconds must be >= 0")
	} else if out.Sync.ProfileRefreshSeconds > 0 && out.Sync.ProfileRefreshSeconds < 30 {
		res.addWarn("sync.profile_refresh_seconds is very low (%d).", out.Sync.ProfileRefreshSeconds)
	}

	return out, res
}

func isLocalHost(h string) bool {
	switch h {
	case "localhost", "127.0.0.1", "::1", "10.0.2.2":
		return true
	}
	return false
}

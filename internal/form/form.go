// Package form holds the field checks that run before any network call.
package form

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"ondemand-engine/internal/config"
	"ondemand-engine/internal/domain"
)

const (
	MsgMobileRequired   = "Mobile number is required"
	MsgMobileInvalid    = "Please enter a valid 10-digit mobile number"
	MsgPasswordRequired = "Password is required"
	MsgTitleRequired    = "Post title is required"
	MsgContentRequired  = "Post content is required"
	MsgCategoryRequired = "Please select a category"
	MsgStatusInvalid    = "Status must be draft or published"
)

type Rules struct {
	Mobile      *regexp.Regexp
	PasswordMin int
	PasswordMax int
	TitleMin    int
	TitleMax    int
	ContentMin  int
	ContentMax  int
	MaxTags     int
}

// DefaultRules mirrors the embedded default config.
func DefaultRules() Rules {
	return RulesFromConfig(config.Default())
}

// RulesFromConfig falls back to the 10-digit pattern if the configured one
// does not compile; config validation reports that case separately.
func RulesFromConfig(cfg config.Config) Rules {
	v := cfg.Validation
	re, err := regexp.Compile(v.Mobile.Pattern)
	if err != nil || v.Mobile.Pattern == "" {
		re = regexp.MustCompile(`^\d{10}$`)
	}
	return Rules{
		Mobile:      re,
		PasswordMin: v.Password.MinLength,
		PasswordMax: v.Password.MaxLength,
		TitleMin:    v.Post.TitleMinLength,
		TitleMax:    v.Post.TitleMaxLength,
		ContentMin:  v.Post.ContentMinLength,
		ContentMax:  v.Post.ContentMaxLength,
		MaxTags:     v.Post.MaxTags,
	}
}

// Errors maps a field name to the message shown next to it.
type Errors map[string]string

func (e Errors) OK() bool { return len(e) == 0 }

// First returns the message of the first failing field in display order.
func (e Errors) First() string {
	for _, f := range []string{"mobile", "password", "title", "content", "category", "tags", "status"} {
		if m, ok := e[f]; ok {
			return m
		}
	}
	for _, m := range e {
		return m
	}
	return ""
}

func (e Errors) Error() string { return e.First() }

func (r Rules) ValidateLogin(mobile, password string) Errors {
	errs := Errors{}

	m := strings.TrimSpace(mobile)
	switch {
	case m == "":
		errs["mobile"] = MsgMobileRequired
	case !r.Mobile.MatchString(m):
		errs["mobile"] = MsgMobileInvalid
	}

	n := utf8.RuneCountInString(password)
	switch {
	case strings.TrimSpace(password) == "":
		errs["password"] = MsgPasswordRequired
	case n < r.PasswordMin:
		errs["password"] = fmt.Sprintf("Password must be at least %d characters", r.PasswordMin)
	case r.PasswordMax > 0 && n > r.PasswordMax:
		errs["password"] = fmt.Sprintf("Password must not exceed %d characters", r.PasswordMax)
	}
	return errs
}

func (r Rules) ValidatePost(p domain.CreatePostRequest) Errors {
	errs := Errors{}
	r.checkTitle(errs, p.Title)
	r.checkContent(errs, p.Content)
	if strings.TrimSpace(p.Category) == "" {
		errs["category"] = MsgCategoryRequired
	}
	r.checkTags(errs, p.Tags)
	if p.Status != "" && p.Status != domain.PostDraft && p.Status != domain.PostPublished {
		errs["status"] = MsgStatusInvalid
	}
	return errs
}

// ValidatePostUpdate only checks the fields being changed.
func (r Rules) ValidatePostUpdate(p domain.UpdatePostRequest) Errors {
	errs := Errors{}
	if p.Title != nil {
		r.checkTitle(errs, *p.Title)
	}
	if p.Content != nil {
		r.checkContent(errs, *p.Content)
	}
	if p.Category != nil && strings.TrimSpace(*p.Category) == "" {
		errs["category"] = MsgCategoryRequired
	}
	if p.Tags != nil {
		r.checkTags(errs, *p.Tags)
	}
	if p.Status != nil && !p.Status.Valid() {
		errs["status"] = "Status must be draft, published or archived"
	}
	return errs
}

func (r Rules) checkTitle(errs Errors, title string) {
	n := utf8.RuneCountInString(title)
	switch {
	case strings.TrimSpace(title) == "":
		errs["title"] = MsgTitleRequired
	case n < r.TitleMin:
		errs["title"] = fmt.Sprintf("Title must be at least %d characters", r.TitleMin)
	case n > r.TitleMax:
		errs["title"] = fmt.Sprintf("Title must not exceed %d characters", r.TitleMax)
	}
}

func (r Rules) checkContent(errs Errors, content string) {
	n := utf8.RuneCountInString(content)
	switch {
	case strings.TrimSpace(content) == "":
		errs["content"] = MsgContentRequired
	case n < r.ContentMin:
		errs["content"] = fmt.Sprintf("Content must be at least %d characters", r.ContentMin)
	case n > r.ContentMax:
		errs["content"] = fmt.Sprintf("Content must not exceed %d characters", r.ContentMax)
	}
}

func (r Rules) checkTags(errs Errors, tags []string) {
	if r.MaxTags > 0 && len(tags) > r.MaxTags {
		errs["tags"] = fmt.Sprintf("A post can have at most %d tags", r.MaxTags)
	}
}

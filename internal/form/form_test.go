package form

import (
	"strings"
	"testing"

	"ondemand-engine/internal/domain"
)

func TestValidateLogin(t *testing.T) {
	r := DefaultRules()
	cases := []struct {
		name     string
		mobile   string
		password string
		field    string
		msg      string
	}{
		{"ok", "0123456789", "secret1", "", ""},
		{"ok trimmed mobile", "  0123456789 ", "secret1", "", ""},
		{"missing mobile", "   ", "secret1", "mobile", MsgMobileRequired},
		{"short mobile", "12345", "secret1", "mobile", MsgMobileInvalid},
		{"letters in mobile", "01234abcde", "secret1", "mobile", MsgMobileInvalid},
		{"eleven digits", "01234567890", "secret1", "mobile", MsgMobileInvalid},
		{"missing password", "0123456789", "  ", "password", MsgPasswordRequired},
		{"short password", "0123456789", "abc", "password", "Password must be at least 6 characters"},
		{"long password", "0123456789", strings.Repeat("x", 51), "password", "Password must not exceed 50 characters"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := r.ValidateLogin(tc.mobile, tc.password)
			if tc.field == "" {
				if !errs.OK() {
					t.Fatalf("unexpected errors: %v", errs)
				}
				return
			}
			if got := errs[tc.field]; got != tc.msg {
				t.Fatalf("%s: got %q, want %q", tc.field, got, tc.msg)
			}
		})
	}
}

func validPost() domain.CreatePostRequest {
	return domain.CreatePostRequest{
		Title:    "Need a plumber",
		Content:  "Kitchen sink is leaking since morning.",
		Category: "plumbing",
		Status:   domain.PostDraft,
	}
}

func TestValidatePostBounds(t *testing.T) {
	r := DefaultRules()

	if errs := r.ValidatePost(validPost()); !errs.OK() {
		t.Fatalf("valid post rejected: %v", errs)
	}

	p := validPost()
	p.Title = "ab"
	if got := r.ValidatePost(p)["title"]; got != "Title must be at least 3 characters" {
		t.Fatalf("short title: %q", got)
	}
	p.Title = strings.Repeat("t", 201)
	if got := r.ValidatePost(p)["title"]; got != "Title must not exceed 200 characters" {
		t.Fatalf("long title: %q", got)
	}
	p.Title = strings.Repeat("t", 200)
	if _, bad := r.ValidatePost(p)["title"]; bad {
		t.Fatal("title at the max bound must pass")
	}

	p = validPost()
	p.Content = "too short"
	if got := r.ValidatePost(p)["content"]; got != "Content must be at least 10 characters" {
		t.Fatalf("short content: %q", got)
	}
	p.Content = strings.Repeat("c", 5001)
	if got := r.ValidatePost(p)["content"]; got != "Content must not exceed 5000 characters" {
		t.Fatalf("long content: %q", got)
	}

	p = validPost()
	p.Category = ""
	p.Tags = make([]string, 11)
	p.Status = domain.PostArchived
	errs := r.ValidatePost(p)
	if errs["category"] != MsgCategoryRequired {
		t.Fatalf("category: %q", errs["category"])
	}
	if errs["tags"] == "" || errs["status"] == "" {
		t.Fatalf("expected tags and status errors: %v", errs)
	}
}

func TestLengthCountsRunes(t *testing.T) {
	r := DefaultRules()
	p := validPost()
	// three runes, nine bytes
	p.Title = "ñéü"
	if _, bad := r.ValidatePost(p)["title"]; bad {
		t.Fatal("three multi-byte characters should satisfy the minimum")
	}
}

func TestValidatePostUpdateOnlyChecksSetFields(t *testing.T) {
	r := DefaultRules()
	content := "short"
	errs := r.ValidatePostUpdate(domain.UpdatePostRequest{ID: "1", Content: &content})
	if len(errs) != 1 || errs["content"] == "" {
		t.Fatalf("errs = %v", errs)
	}
	archived := domain.PostArchived
	if errs := r.ValidatePostUpdate(domain.UpdatePostRequest{ID: "1", Status: &archived}); !errs.OK() {
		t.Fatalf("archiving through update should be allowed: %v", errs)
	}
}

func TestErrorsFirstFollowsFieldOrder(t *testing.T) {
	errs := Errors{"category": "c", "title": "t"}
	if errs.First() != "t" {
		t.Fatalf("first = %q", errs.First())
	}
}

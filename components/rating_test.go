package components

import (
	"strings"
	"testing"

	"plume/form"
)

func TestRatingFractionalFill(t *testing.T) {
	html := render(Rating{ID: "r", Select: 3.5})
	if got := strings.Count(html, "width:100%"); got != 2 {
		t.Errorf("3.5 should paint 2 full stars, got %d:\n%s", got, html)
	}
	if got := strings.Count(html, "width:50%"); got != 1 {
		t.Errorf("3.5 should paint 1 half star, got %d:\n%s", got, html)
	}
	if !strings.Contains(html, `aria-label="3.5 out of 5 stars"`) {
		t.Errorf("missing aria label in:\n%s", html)
	}
}

func TestRatingIntegerFill(t *testing.T) {
	html := render(Rating{Select: 4})
	if got := strings.Count(html, "width:100%"); got != 4 {
		t.Errorf("4 should paint 4 full stars, got %d", got)
	}
	if strings.Contains(html, "width:50%") {
		t.Error("integer selection should not paint half stars")
	}
}

func TestRatingFractionUnderThreshold(t *testing.T) {
	html := render(Rating{Select: 3.05})
	if got := strings.Count(html, "width:100%"); got != 2 {
		t.Errorf("3.05 rounds down, want 2 full stars, got %d", got)
	}
	if strings.Contains(html, "width:50%") {
		t.Error("fraction under threshold should not paint a half star")
	}
}

func TestRatingInteractive(t *testing.T) {
	f := &form.Field{Name: "score", Value: "2"}
	html := render(Rating{ID: "rate", Interactive: true, Field: f})
	if got := strings.Count(html, `name="score"`); got != 5 {
		t.Errorf("want 5 radios for the bound field, got %d", got)
	}
	if got := strings.Count(html, `checked="checked"`); got != 1 {
		t.Errorf("want exactly one checked radio, got %d", got)
	}
	for _, want := range []string{`role="radiogroup"`, `id="rate-star-2"`, `value="2"`} {
		if !strings.Contains(html, want) {
			t.Errorf("interactive rating missing %q in:\n%s", want, html)
		}
	}
}

func TestRatingErrorGating(t *testing.T) {
	f := &form.Field{Name: "score", Errors: []form.FieldError{{Message: "must rate before submitting"}}}
	if html := render(Rating{Interactive: true, Field: f}); strings.Contains(html, "must rate") {
		t.Error("errors should stay hidden until the field is used")
	}
	f.Used = true
	if html := render(Rating{Interactive: true, Field: f}); !strings.Contains(html, "must rate before submitting") {
		t.Error("used field should render its errors")
	}
}

func TestRatingCustomCountAndColor(t *testing.T) {
	html := render(Rating{Count: 10, Select: 10, Color: "danger"})
	if got := strings.Count(html, "width:100%"); got != 10 {
		t.Errorf("want 10 full stars, got %d", got)
	}
	if !strings.Contains(html, "text-danger-400") {
		t.Errorf("missing star tint in:\n%s", html)
	}
}

package components

import (
	"strings"
	"testing"
)

func TestAccordionInitialOpenResolution(t *testing.T) {
	items := []AccordionItem{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}, {ID: "c", Title: "C", Open: true}}
	cases := []struct {
		name     string
		explicit []string
		want     string
	}{
		{"explicit list wins", []string{"a", "b"}, "a,b"},
		{"open items when no explicit list", nil, "c"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := Accordion{ID: "acc", InitialOpen: tc.explicit, Items: items}.normalize()
			if got := a.initialOpen(); got != tc.want {
				t.Errorf("initialOpen() = %q, want %q", got, tc.want)
			}
		})
	}

	none := Accordion{ID: "acc", Items: []AccordionItem{{ID: "a", Title: "A"}}}.normalize()
	if got := none.initialOpen(); got != "" {
		t.Errorf("no open items should serialize empty, got %q", got)
	}
}

func TestAccordionRender(t *testing.T) {
	html := render(Accordion{
		ID: "help", Multiple: true, Duration: 450,
		Items: []AccordionItem{
			{ID: "x", Title: "Shipping", Icon: "info", Open: true, Content: textContent{"Ships in two days"}},
			{ID: "y", Title: "Returns"},
		},
	})
	for _, want := range []string{
		`data-multiple="true"`, `data-collapsible="false"`, `data-duration="450"`,
		`data-initial-open="x"`,
		`aria-expanded="true"`, `aria-expanded="false"`,
		`aria-controls="x-panel"`, `id="y-panel"`, `role="region"`,
		"Shipping", "Returns", "Ships in two days", "hidden",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("accordion missing %q in:\n%s", want, html)
		}
	}
}

func TestAccordionSynthesizesItemIDs(t *testing.T) {
	html := render(Accordion{ID: "faq", Items: []AccordionItem{{Title: "Only"}}})
	for _, want := range []string{`id="faq-item-1"`, `aria-controls="faq-item-1-panel"`} {
		if !strings.Contains(html, want) {
			t.Errorf("accordion missing %q in:\n%s", want, html)
		}
	}
}

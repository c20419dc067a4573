package markup

import "testing"

const sampleDoc = `
id: root
classes: [container]
attrs: {orientation: horizontal}
children:
  - id: nav
    classes: [container]
    attrs: {orientation: vertical}
    children:
      - {id: nav-home, classes: [item], label: Home, attrs: {selected: "true"}}
      - {id: nav-settings, classes: [item], label: Settings, attrs: {hidden: "yes"}}
  - id: decoration
    classes: [sparkle]
`

func TestParseBuildsNodeTree(t *testing.T) {
	root, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if root.ID != "root" {
		t.Fatalf("expected root id, got %q", root.ID)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(root.Children))
	}
	if !root.HasClass("container") {
		t.Fatalf("expected container class on root")
	}
	if got := root.Attr("orientation"); got != "horizontal" {
		t.Fatalf("expected horizontal orientation, got %q", got)
	}
	nav := root.Children[0]
	if len(nav.Children) != 2 {
		t.Fatalf("expected 2 nav children, got %d", len(nav.Children))
	}
	if got := nav.Children[0].Label; got != "Home" {
		t.Fatalf("expected label Home, got %q", got)
	}
}

func TestParseRejectsInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("id: [unterminated")); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestBoolAttrTruthyValues(t *testing.T) {
	root, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	home := root.Find("nav-home")
	if home == nil {
		t.Fatalf("expected to find nav-home")
	}
	if !home.BoolAttr("selected") {
		t.Fatalf("expected selected attr truthy")
	}
	settings := root.Find("nav-settings")
	if !settings.BoolAttr("hidden") {
		t.Fatalf("expected yes to read as truthy")
	}
	if home.BoolAttr("absent") {
		t.Fatalf("expected absent attr falsy")
	}
}

func TestFindMissingIDReturnsNil(t *testing.T) {
	root, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got := root.Find("nope"); got != nil {
		t.Fatalf("expected nil for an unknown id, got %v", got)
	}
}

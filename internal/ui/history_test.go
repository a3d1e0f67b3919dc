package ui

import (
	"fmt"
	"testing"
)

func projectRoute(slug string) Route { return Route{Page: PageProject, Slug: slug} }

func TestNewHistory(t *testing.T) {
	h := NewHistory()
	if h.maxDepth != defaultMaxDepth {
		t.Errorf("expected maxDepth %d, got %d", defaultMaxDepth, h.maxDepth)
	}
	if h.CanBack() {
		t.Error("new history should have nothing to go back to")
	}
	if h.CanForward() {
		t.Error("new history should have nothing to go forward to")
	}
}

func TestPushAndBack(t *testing.T) {
	h := NewHistory()

	// Leaving the project list for a project
	h.Push(Route{Page: PageProjects})

	restored, ok := h.Back(projectRoute("quayside-drive-680"))
	if !ok {
		t.Fatal("back should succeed")
	}
	if restored.Page != PageProjects {
		t.Errorf("expected the projects page, got %v", restored)
	}
	if !h.CanForward() {
		t.Error("should be able to go forward after back")
	}
}

func TestBackForward(t *testing.T) {
	h := NewHistory()
	h.Push(Route{Page: PageHome})
	h.Push(Route{Page: PageProjects})
	current := projectRoute("a")

	restored, ok := h.Back(current)
	if !ok || restored.Page != PageProjects {
		t.Fatalf("first back: got %v, %v", restored, ok)
	}

	redone, ok := h.Forward(restored)
	if !ok {
		t.Fatal("forward should succeed")
	}
	if redone != current {
		t.Errorf("expected %v after forward, got %v", current, redone)
	}
}

func TestPushClearsForward(t *testing.T) {
	h := NewHistory()
	h.Push(Route{Page: PageProjects})

	if _, ok := h.Back(projectRoute("a")); !ok {
		t.Fatal("back should succeed")
	}
	if !h.CanForward() {
		t.Fatal("should be able to go forward after back")
	}

	h.Push(Route{Page: PageProjects})
	if h.CanForward() {
		t.Error("forward stack should be cleared after push")
	}
}

func TestPushSkipsRepeat(t *testing.T) {
	h := NewHistory()
	h.Push(projectRoute("a"))
	h.Push(projectRoute("a"))

	if len(h.backStack) != 1 {
		t.Errorf("expected one entry for a repeated route, got %d", len(h.backStack))
	}
}

func TestMaxDepth(t *testing.T) {
	h := &History{maxDepth: 3}

	for i := 0; i < 5; i++ {
		h.Push(projectRoute(fmt.Sprintf("p%d", i)))
	}

	if len(h.backStack) != 3 {
		t.Fatalf("expected back stack length 3, got %d", len(h.backStack))
	}
	if h.backStack[0].Slug != "p2" {
		t.Errorf("expected oldest kept entry p2, got %q", h.backStack[0].Slug)
	}
}

func TestBackEmpty(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Back(Route{}); ok {
		t.Error("back on empty history should return false")
	}
}

func TestForwardEmpty(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Forward(Route{}); ok {
		t.Error("forward on empty history should return false")
	}
}

func TestClear(t *testing.T) {
	h := NewHistory()
	h.Push(Route{Page: PageHome})
	h.Push(Route{Page: PageProjects})
	h.Back(projectRoute("a"))

	h.Clear()
	if h.CanBack() || h.CanForward() {
		t.Error("after clear, should not be able to go back or forward")
	}
}

func TestWalkBackAndForward(t *testing.T) {
	h := NewHistory()
	h.Push(Route{Page: PageHome})
	h.Push(Route{Page: PageProjects})
	h.Push(projectRoute("a"))
	current := projectRoute("b")

	want := []Route{projectRoute("a"), {Page: PageProjects}, {Page: PageHome}}
	r := current
	for i, w := range want {
		var ok bool
		r, ok = h.Back(r)
		if !ok || r != w {
			t.Fatalf("back %d: expected %v, got %v", i+1, w, r)
		}
	}
	if h.CanBack() {
		t.Error("should not be able to go back further")
	}

	for i := len(want) - 2; i >= 0; i-- {
		var ok bool
		r, ok = h.Forward(r)
		if !ok || r != want[i] {
			t.Fatalf("forward: expected %v, got %v", want[i], r)
		}
	}
	r, ok := h.Forward(r)
	if !ok || r != current {
		t.Fatalf("last forward: expected %v, got %v", current, r)
	}
	if h.CanForward() {
		t.Error("should not be able to go forward further")
	}
}

package ui

const defaultMaxDepth = 50

// Page names the views the window can show.
type Page int

const (
	PageHome Page = iota
	PageAbout
	PageProjects
	PageContact
	PageProject // a single project, identified by Route.Slug
)

// Route is a place in the app a user can navigate back to.
type Route struct {
	Page Page
	Slug string // project slug for PageProject
}

// History manages back/forward stacks of visited routes.
type History struct {
	backStack    []Route
	forwardStack []Route
	maxDepth     int
}

// NewHistory creates a History with the default max depth of 50.
func NewHistory() *History {
	return &History{
		maxDepth: defaultMaxDepth,
	}
}

// Push records the route being left and clears the forward stack.
// Pushing the route already on top is ignored.
func (h *History) Push(r Route) {
	if n := len(h.backStack); n > 0 && h.backStack[n-1] == r {
		return
	}
	h.backStack = append(h.backStack, r)
	if len(h.backStack) > h.maxDepth {
		h.backStack = h.backStack[len(h.backStack)-h.maxDepth:]
	}
	h.forwardStack = nil
}

// Back pops the most recent route and pushes current onto the forward
// stack. Returns false if there is nowhere to go back to.
func (h *History) Back(current Route) (Route, bool) {
	if len(h.backStack) == 0 {
		return Route{}, false
	}
	last := h.backStack[len(h.backStack)-1]
	h.backStack = h.backStack[:len(h.backStack)-1]
	h.forwardStack = append(h.forwardStack, current)
	return last, true
}

// Forward reverses the last Back.
func (h *History) Forward(current Route) (Route, bool) {
	if len(h.forwardStack) == 0 {
		return Route{}, false
	}
	last := h.forwardStack[len(h.forwardStack)-1]
	h.forwardStack = h.forwardStack[:len(h.forwardStack)-1]
	h.backStack = append(h.backStack, current)
	return last, true
}

// CanBack returns true if there is at least one route to go back to.
func (h *History) CanBack() bool {
	return len(h.backStack) > 0
}

// CanForward returns true if there is at least one route to go forward to.
func (h *History) CanForward() bool {
	return len(h.forwardStack) > 0
}

// Clear removes all history.
func (h *History) Clear() {
	h.backStack = nil
	h.forwardStack = nil
}

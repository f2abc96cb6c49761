package navigation

import (
	"github.com/Its-donkey/techsolutions-site/internal/ui/model"
)

// History is the browser history stack.
type History interface {
	Push(entry model.HistoryEntry, fragment string)
}

// Router applies navigation decisions to the history stack.
type Router struct {
	ctrl    *Controller
	history History
}

// NewRouter pairs a controller with the history it should update.
func NewRouter(ctrl *Controller, history History) *Router {
	return &Router{ctrl: ctrl, history: history}
}

// Navigate handles a user-initiated page change.
func (r *Router) Navigate(pageID string) model.NavigationDecision {
	return r.apply(r.ctrl.NavigateTo(pageID))
}

// Pop handles a back/forward navigation.
func (r *Router) Pop(entry *model.HistoryEntry) model.NavigationDecision {
	return r.apply(r.ctrl.HandleHistoryPop(entry))
}

func (r *Router) apply(decision model.NavigationDecision) model.NavigationDecision {
	if decision.PushHistory && r.history != nil {
		r.history.Push(model.HistoryEntry{Page: decision.Page}, decision.Fragment)
	}
	return decision
}

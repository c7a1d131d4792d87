// Package navigation owns the screen/sub-screen/payload triple that decides
// which part of the UI is mounted. Routing is deterministic and explicit:
// there is no history stack, and "back" is always a fresh Navigate call.
package navigation

import (
	"github.com/Great2008/reads-web-app/internal/domain"
	"github.com/Great2008/reads-web-app/internal/quiz"
)

// View is a top-level screen of the single-page navigation state machine.
type View string

// The closed set of views. Anything else falls back to ViewDashboard.
const (
	ViewLoading   View = "loading"
	ViewAuth      View = "auth"
	ViewDashboard View = "dashboard"
	ViewLearn     View = "learn"
	ViewWallet    View = "wallet"
	ViewProfile   View = "profile"
	ViewSettings  View = "settings"
)

// Valid reports whether v is one of the known views.
func (v View) Valid() bool {
	switch v {
	case ViewLoading, ViewAuth, ViewDashboard, ViewLearn, ViewWallet, ViewProfile, ViewSettings:
		return true
	default:
		return false
	}
}

// SubView is a nested screen within a view, e.g. the quiz steps inside learn.
type SubView string

// Sub-views of the learn flow, in order of the lesson journey.
const (
	SubViewNone       SubView = ""
	SubViewCategories SubView = "categories"
	SubViewList       SubView = "list"
	SubViewContent    SubView = "content"
	SubViewQuiz       SubView = "quiz"
	SubViewResult     SubView = "result"
)

// Sub-views of the auth flow.
const (
	SubViewLogin  SubView = "login"
	SubViewSignup SubView = "signup"
)

// Payload is the closed union of data a navigation target can carry. Each
// variant is strongly typed; the renderer matches on the concrete type.
type Payload interface {
	navPayload()
}

// CategoryPayload targets a lesson list for one category.
type CategoryPayload struct {
	Category domain.Category
}

// LessonPayload targets lesson content or the quiz for one lesson.
type LessonPayload struct {
	Lesson domain.Lesson
}

// ResultPayload carries a completed quiz's reward for the result screen.
type ResultPayload struct {
	Result quiz.RewardResult
}

func (CategoryPayload) navPayload() {}
func (LessonPayload) navPayload()   {}
func (ResultPayload) navPayload()   {}

// State is the current screen triple. SubView and Payload are meaningful only
// relative to View; they are reset whenever View changes without an explicit
// sub-view, so stale sub-state never leaks across top-level views.
type State struct {
	View    View
	SubView SubView
	Payload Payload
}

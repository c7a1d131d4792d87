// Package app wires the session manager, navigation controller, wallet store
// and quiz engine into the single-page application flow: authenticate, browse
// categories, read a lesson, take its quiz, collect the reward.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Great2008/reads-web-app/internal/domain"
	"github.com/Great2008/reads-web-app/internal/events"
	"github.com/Great2008/reads-web-app/internal/gateway"
	"github.com/Great2008/reads-web-app/internal/navigation"
	"github.com/Great2008/reads-web-app/internal/quiz"
	"github.com/Great2008/reads-web-app/internal/session"
	"github.com/Great2008/reads-web-app/internal/wallet"
)

// ErrNoActiveQuiz is returned when a quiz operation arrives while no quiz
// session is live (never started, or discarded by navigating away).
var ErrNoActiveQuiz = errors.New("no active quiz session")

// App is the application coordinator. It is constructed once at process start
// and passed by reference to whatever drives it; Close releases its
// subscriptions explicitly.
type App struct {
	gw       gateway.BackendGateway
	Sessions *session.Manager
	Nav      *navigation.Controller
	Wallet   *wallet.Store
	policy   quiz.RewardPolicy
	logger   *slog.Logger

	navSub     *events.Subscription[navigation.State]
	sessionSub *events.Subscription[session.Snapshot]
	walletSub  *events.Subscription[session.Snapshot]

	mu             sync.Mutex
	engine         *quiz.Engine
	rewardCredited bool
	lastCategories []domain.Category
}

// New wires an App around the given gateway and credential store.
func New(
	gw gateway.BackendGateway,
	creds session.CredentialStore,
	policy quiz.RewardPolicy,
	logger *slog.Logger,
) *App {
	a := &App{
		gw:       gw,
		Sessions: session.NewManager(gw, creds, logger),
		Nav:      navigation.NewController(logger),
		policy:   policy,
		logger:   logger.With("component", "app"),
	}
	a.Wallet = wallet.NewStore(gw, a.Sessions, logger)

	// Subscription order matters: the wallet refresh must run before the
	// navigation reaction mounts a screen that renders the balance.
	a.walletSub = a.Wallet.Bind(a.Sessions)
	a.sessionSub = a.Nav.BindSession(a.Sessions)

	// Leaving the quiz flow discards the live session: no partial credit.
	a.navSub = a.Nav.Subscribe(a.discardQuizOnExit)

	return a
}

// Close cancels the App's subscriptions. No notifications arrive afterwards.
func (a *App) Close() {
	a.navSub.Cancel()
	a.sessionSub.Cancel()
	a.walletSub.Cancel()
}

// Initialize resolves the session from the stored credential; the navigation
// and wallet reactions follow from the resulting transition.
func (a *App) Initialize(ctx context.Context) error {
	return a.Sessions.Initialize(ctx)
}

// Login authenticates and, via the session subscription, lands on the
// dashboard with a freshly fetched balance.
func (a *App) Login(ctx context.Context, email, password string) error {
	return a.Sessions.Login(ctx, email, password)
}

// Signup registers a new account and logs it in.
func (a *App) Signup(ctx context.Context, name, email, password, confirm string) error {
	return a.Sessions.Signup(ctx, name, email, password, confirm)
}

// Logout tears down the authenticated state: credential cleared, balance
// reset, navigation back on the auth screen.
func (a *App) Logout() error {
	return a.Sessions.Logout()
}

// Navigate moves to a top-level view with no sub-state.
func (a *App) Navigate(view navigation.View) {
	a.Nav.Navigate(view, navigation.SubViewNone, nil)
}

// Categories lists the lesson categories. Catalog reads degrade gracefully:
// on failure the last-known list is returned and navigation is never blocked.
func (a *App) Categories(ctx context.Context) []domain.Category {
	cats, err := a.gw.Categories(ctx)
	if err != nil {
		a.checkExpiry(err)
		a.logger.Warn("category fetch failed, using last-known list", "error", err)
		a.mu.Lock()
		defer a.mu.Unlock()
		return a.lastCategories
	}

	a.mu.Lock()
	a.lastCategories = cats
	a.mu.Unlock()
	return cats
}

// Lessons lists the lessons of a category, degrading to an empty list on
// read failure.
func (a *App) Lessons(ctx context.Context, category domain.Category) []domain.Lesson {
	lessons, err := a.gw.Lessons(ctx, category.ID)
	if err != nil {
		a.checkExpiry(err)
		a.logger.Warn("lesson fetch failed", "category", category.ID, "error", err)
		return nil
	}
	return lessons
}

// TotalEarned returns the lifetime earned-token total for the wallet view,
// degrading to zero on read failure.
func (a *App) TotalEarned(ctx context.Context) int64 {
	total, err := a.gw.RewardSummary(ctx)
	if err != nil {
		a.checkExpiry(err)
		a.logger.Warn("reward summary fetch failed", "error", err)
		return 0
	}
	return total
}

// OpenLearn enters the learn flow at the category list.
func (a *App) OpenLearn() {
	a.Nav.Navigate(navigation.ViewLearn, navigation.SubViewCategories, nil)
}

// OpenCategory shows the lesson list for a category.
func (a *App) OpenCategory(category domain.Category) {
	a.Nav.Navigate(navigation.ViewLearn, navigation.SubViewList,
		navigation.CategoryPayload{Category: category})
}

// OpenLesson shows a lesson's content.
func (a *App) OpenLesson(lesson domain.Lesson) {
	a.Nav.Navigate(navigation.ViewLearn, navigation.SubViewContent,
		navigation.LessonPayload{Lesson: lesson})
}

// StartQuiz marks the lesson complete (fire-and-forget), fetches its question
// set and mounts the quiz sub-view with a fresh session. A failed or empty
// question fetch aborts entry and leaves navigation on the lesson content.
func (a *App) StartQuiz(ctx context.Context, lesson domain.Lesson) error {
	// Completion marker only; a failure never blocks the quiz.
	if err := a.gw.CompleteLesson(ctx, lesson.ID); err != nil {
		a.checkExpiry(err)
		a.logger.Warn("lesson completion marker failed", "lesson_id", lesson.ID, "error", err)
	}

	questions, err := a.gw.Questions(ctx, lesson.ID)
	if err != nil {
		a.checkExpiry(err)
		return fmt.Errorf("failed to load quiz: %w", err)
	}

	engine, err := quiz.NewEngine(lesson.ID, questions, a.gw, a.policy, a.logger)
	if err != nil {
		return fmt.Errorf("failed to start quiz: %w", err)
	}

	a.mu.Lock()
	a.engine = engine
	a.rewardCredited = false
	a.mu.Unlock()

	a.Nav.Navigate(navigation.ViewLearn, navigation.SubViewQuiz,
		navigation.LessonPayload{Lesson: lesson})
	return nil
}

// Quiz returns the live quiz session, or nil when none is active.
func (a *App) Quiz() *quiz.Engine {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.engine
}

// AnswerQuiz answers the current question. The final answer submits the quiz:
// on success the backend's earned amount is credited to the wallet and the
// result screen is mounted. A failed submission keeps the quiz live so
// FinishQuiz can retry it.
func (a *App) AnswerQuiz(ctx context.Context, optionIndex int) (bool, quiz.RewardResult, error) {
	a.mu.Lock()
	engine := a.engine
	a.mu.Unlock()
	if engine == nil {
		return false, quiz.RewardResult{}, ErrNoActiveQuiz
	}

	done, result, err := engine.Answer(ctx, optionIndex)
	if err != nil {
		a.checkExpiry(err)
		return done, quiz.RewardResult{}, err
	}
	if !done {
		return false, quiz.RewardResult{}, nil
	}

	a.settleReward(result)
	return true, result, nil
}

// FinishQuiz retries the submission of a fully answered quiz whose earlier
// submission failed.
func (a *App) FinishQuiz(ctx context.Context) (quiz.RewardResult, error) {
	a.mu.Lock()
	engine := a.engine
	a.mu.Unlock()
	if engine == nil {
		return quiz.RewardResult{}, ErrNoActiveQuiz
	}

	result, err := engine.Finish(ctx)
	if err != nil {
		a.checkExpiry(err)
		return quiz.RewardResult{}, err
	}

	a.settleReward(result)
	return result, nil
}

// DismissResult drops the completed quiz session and returns to the category
// list.
func (a *App) DismissResult() {
	a.mu.Lock()
	a.engine = nil
	a.mu.Unlock()
	a.Nav.Navigate(navigation.ViewLearn, navigation.SubViewCategories, nil)
}

// settleReward credits the authoritative earned amount exactly once and
// mounts the result screen.
func (a *App) settleReward(result quiz.RewardResult) {
	a.mu.Lock()
	if a.rewardCredited {
		a.mu.Unlock()
		return
	}
	a.rewardCredited = true
	a.mu.Unlock()

	if err := a.Wallet.Credit(result.TokensEarned); err != nil {
		a.logger.Error("failed to credit reward", "error", err)
	}

	a.Nav.Navigate(navigation.ViewLearn, navigation.SubViewResult,
		navigation.ResultPayload{Result: result})
}

// discardQuizOnExit drops the live quiz session whenever navigation leaves
// the quiz/result sub-views. An in-progress session is discarded without
// completing: no partial credit.
func (a *App) discardQuizOnExit(state navigation.State) {
	inQuizFlow := state.View == navigation.ViewLearn &&
		(state.SubView == navigation.SubViewQuiz || state.SubView == navigation.SubViewResult)
	if inQuizFlow {
		return
	}

	a.mu.Lock()
	engine := a.engine
	a.engine = nil
	a.mu.Unlock()

	if engine != nil && engine.Status() == quiz.StatusInProgress {
		a.logger.Info("quiz discarded without credit",
			"lesson_id", engine.LessonID(),
			"answered", engine.CurrentIndex(),
			"total", engine.TotalQuestions())
	}
}

// checkExpiry forces the session unauthenticated when a call reports the
// bearer credential was rejected.
func (a *App) checkExpiry(err error) {
	if errors.Is(err, gateway.ErrSessionExpired) {
		a.Sessions.ExpireSession()
	}
}

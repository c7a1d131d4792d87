// Package main implements the terminal client for the $READS learning app.
// It drives the shared application core against a running backend: session
// lifecycle, lesson browsing, quizzes and the token wallet.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Great2008/reads-web-app/internal/app"
	"github.com/Great2008/reads-web-app/internal/config"
	"github.com/Great2008/reads-web-app/internal/domain"
	"github.com/Great2008/reads-web-app/internal/gateway"
	"github.com/Great2008/reads-web-app/internal/navigation"
	"github.com/Great2008/reads-web-app/internal/platform/logger"
	"github.com/Great2008/reads-web-app/internal/quiz"
	"github.com/Great2008/reads-web-app/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := logger.Setup(cfg.Server)

	policy, err := quiz.NewPolicy(
		cfg.Quiz.RewardPolicy,
		cfg.Quiz.RewardThresholdPercent,
		cfg.Quiz.RewardThresholdTokens,
		cfg.Quiz.TokensPerCorrect,
	)
	if err != nil {
		log.Fatalf("Failed to build reward policy: %v", err)
	}

	gw := gateway.NewHTTPGateway(
		cfg.Client.BaseURL,
		time.Duration(cfg.Client.RequestTimeoutSeconds)*time.Second,
		appLogger,
	)
	creds := session.NewFileCredentialStore(cfg.Client.CredentialFile)

	core := app.New(gw, creds, policy, appLogger)
	defer core.Close()

	ctx := context.Background()
	if err := core.Initialize(ctx); err != nil {
		appLogger.Warn("session restore failed", "error", err)
	}

	cli := &cli{core: core, in: bufio.NewScanner(os.Stdin)}
	cli.run(ctx)
}

type cli struct {
	core *app.App
	in   *bufio.Scanner
}

func (c *cli) run(ctx context.Context) {
	fmt.Println("$READS - type 'help' for commands")
	for {
		snap := c.core.Sessions.Snapshot()
		nav := c.core.Nav.State()
		fmt.Printf("[%s %s/%s] > ", snap.State, nav.View, nav.SubView)

		if !c.in.Scan() {
			return
		}
		line := strings.TrimSpace(c.in.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "help":
			c.printHelp()
		case "login":
			c.login(ctx, fields[1:])
		case "signup":
			c.signup(ctx, fields[1:])
		case "logout":
			if err := c.core.Logout(); err != nil {
				fmt.Println("logout failed:", err)
			}
		case "balance":
			fmt.Println("balance:", c.core.Wallet.Balance())
		case "earned":
			fmt.Println("total earned:", c.core.TotalEarned(ctx))
		case "categories":
			c.core.OpenLearn()
			for _, cat := range c.core.Categories(ctx) {
				fmt.Printf("  %s (%d lessons)\n", cat.Name, cat.Count)
			}
		case "lessons":
			c.lessons(ctx, fields[1:])
		case "quiz":
			c.quiz(ctx, fields[1:])
		case "quit", "exit":
			return
		default:
			fmt.Println("unknown command:", fields[0])
		}
	}
}

func (c *cli) printHelp() {
	fmt.Println(`commands:
  login <email> <password>
  signup <name> <email> <password>
  logout
  categories
  lessons <category>
  quiz <category> <lesson-number>
  balance
  earned
  quit`)
}

func (c *cli) login(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Println("usage: login <email> <password>")
		return
	}
	if err := c.core.Login(ctx, args[0], args[1]); err != nil {
		fmt.Println("login failed:", err)
		return
	}
	fmt.Println("logged in")
}

func (c *cli) signup(ctx context.Context, args []string) {
	if len(args) != 3 {
		fmt.Println("usage: signup <name> <email> <password>")
		return
	}
	if err := c.core.Signup(ctx, args[0], args[1], args[2], args[2]); err != nil {
		fmt.Println("signup failed:", err)
		return
	}
	fmt.Println("account created")
}

func (c *cli) findLesson(ctx context.Context, categoryName, number string) (domain.Lesson, bool) {
	var category domain.Category
	for _, cat := range c.core.Categories(ctx) {
		if strings.EqualFold(cat.Name, categoryName) || cat.ID == categoryName {
			category = cat
			break
		}
	}
	if category.ID == "" {
		fmt.Println("unknown category:", categoryName)
		return domain.Lesson{}, false
	}

	c.core.OpenCategory(category)
	lessons := c.core.Lessons(ctx, category)

	idx, err := strconv.Atoi(number)
	if err != nil || idx < 1 || idx > len(lessons) {
		fmt.Printf("lesson number must be 1..%d\n", len(lessons))
		return domain.Lesson{}, false
	}
	return lessons[idx-1], true
}

func (c *cli) lessons(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Println("usage: lessons <category>")
		return
	}
	for _, cat := range c.core.Categories(ctx) {
		if strings.EqualFold(cat.Name, args[0]) || cat.ID == args[0] {
			c.core.OpenCategory(cat)
			for i, lesson := range c.core.Lessons(ctx, cat) {
				fmt.Printf("  %d. %s (%s)\n", i+1, lesson.Title, lesson.Subject)
			}
			return
		}
	}
	fmt.Println("unknown category:", args[0])
}

func (c *cli) quiz(ctx context.Context, args []string) {
	if len(args) != 2 {
		fmt.Println("usage: quiz <category> <lesson-number>")
		return
	}

	lesson, ok := c.findLesson(ctx, args[0], args[1])
	if !ok {
		return
	}

	c.core.OpenLesson(lesson)
	if err := c.core.StartQuiz(ctx, lesson); err != nil {
		fmt.Println("failed to start quiz:", err)
		return
	}

	engine := c.core.Quiz()
	for {
		question := engine.CurrentQuestion()
		if question == nil {
			break
		}

		fmt.Printf("\n%s\n", question.Prompt)
		for i, option := range question.Options {
			fmt.Printf("  %d) %s\n", i+1, option)
		}
		fmt.Print("answer: ")

		if !c.in.Scan() {
			return
		}
		choice, err := strconv.Atoi(strings.TrimSpace(c.in.Text()))
		if err != nil || choice < 1 || choice > len(question.Options) {
			fmt.Println("pick an option number")
			continue
		}

		done, result, err := c.core.AnswerQuiz(ctx, choice-1)
		if err != nil {
			fmt.Println("answer failed:", err)
			continue
		}
		if done {
			fmt.Printf("\nquiz complete: %d/%d correct, earned %d tokens\n",
				result.CorrectCount, result.TotalQuestions, result.TokensEarned)
			fmt.Println("balance:", c.core.Wallet.Balance())
			c.core.DismissResult()
			return
		}
	}

	// Submission failed mid-quiz; retry once through Finish.
	if c.core.Nav.State().SubView == navigation.SubViewQuiz {
		if result, err := c.core.FinishQuiz(ctx); err != nil {
			fmt.Println("failed to submit quiz:", err)
		} else {
			fmt.Printf("earned %d tokens\n", result.TokensEarned)
			c.core.DismissResult()
		}
	}
}

package api

import (
	"fmt"
	"time"

	perrors "github.com/coderefine/coderefine/internal/errors"
)

// User is the account returned by sign-in.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

// Session is a signed-in user together with the bearer token the service issued.
type Session struct {
	User  User
	Token string
}

// ComplexityReport holds the static metrics the service computes for a piece
// of code. LinesOfCode is optional; it is nil when the service omits it.
type ComplexityReport struct {
	TimeComplexity       string `json:"time_complexity" yaml:"time_complexity"`
	SpaceComplexity      string `json:"space_complexity" yaml:"space_complexity"`
	NestingDepth         int    `json:"nesting_depth" yaml:"nesting_depth"`
	CyclomaticComplexity int    `json:"cyclomatic_complexity" yaml:"cyclomatic_complexity"`
	LinesOfCode          *int   `json:"lines_of_code,omitempty" yaml:"lines_of_code,omitempty"`
}

// AnalysisResult is the response to an analyze call. Analysis is markdown.
type AnalysisResult struct {
	Complexity ComplexityReport `json:"complexity"`
	Analysis   string           `json:"analysis"`
}

// Action selects what a refinement focuses on.
type Action string

const (
	ActionBugs        Action = "bugs"
	ActionPerformance Action = "performance"
	ActionRefactor    Action = "refactor"
)

// Actions lists the refinement actions in display order.
var Actions = []Action{ActionBugs, ActionPerformance, ActionRefactor}

// ParseAction converts a string to an Action.
func ParseAction(s string) (Action, error) {
	for _, a := range Actions {
		if string(a) == s {
			return a, nil
		}
	}
	return "", perrors.UnknownAction(s)
}

// Label returns the human readable label for the action.
func (a Action) Label() string {
	switch a {
	case ActionBugs:
		return "Fix Bugs"
	case ActionPerformance:
		return "Optimize Performance"
	case ActionRefactor:
		return "Refactor"
	default:
		return fmt.Sprintf("Action(%s)", string(a))
	}
}

// RefineResult is the most recent successful refinement. The service
// supplies RefinedCode and both complexity reports; the client records what
// was sent and when the answer arrived.
type RefineResult struct {
	RefinedCode        string           `json:"refined_code"`
	OriginalComplexity ComplexityReport `json:"original_complexity"`
	RefinedComplexity  ComplexityReport `json:"refined_complexity"`

	OriginalCode string    `json:"-"`
	Language     string    `json:"-"`
	Action       Action    `json:"-"`
	ReceivedAt   time.Time `json:"-"`
}

// Health is the response of the health endpoint.
type Health struct {
	Status string `json:"status"`
}

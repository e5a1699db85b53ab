package app

import (
	"github.com/coderefine/coderefine/internal/api"
)

// RequestKind identifies one class of remote request. Each kind has its own
// token sequence so a slow answer of one kind never cancels another kind.
type RequestKind int

const (
	RequestAuth RequestKind = iota
	RequestAnalyze
	RequestRefine

	numRequestKinds
)

// String returns the name used in logs
func (k RequestKind) String() string {
	switch k {
	case RequestAuth:
		return "auth"
	case RequestAnalyze:
		return "analyze"
	case RequestRefine:
		return "refine"
	default:
		return "unknown"
	}
}

// State is the application state store. The editor text itself lives in the
// editor panel; State holds everything the remote service returned.
//
// Session, Analysis and Refinement are replaced wholesale, never merged.
type State struct {
	Session    *api.Session
	Analysis   *api.AnalysisResult
	Refinement *api.RefineResult

	latest   [numRequestKinds]uint64
	inFlight int
}

// NewState returns a signed-out state with no results.
func NewState() *State {
	return &State{}
}

// SignedIn reports whether a session is present
func (s *State) SignedIn() bool {
	return s.Session != nil
}

// SignIn replaces the session
func (s *State) SignIn(sess api.Session) {
	s.Session = &sess
}

// SignOut forgets the session. Results are kept so a new sign-in can keep
// working on the same code.
func (s *State) SignOut() {
	s.Session = nil
}

// Token returns the bearer token of the session, empty when signed out
func (s *State) Token() string {
	if s.Session == nil {
		return ""
	}
	return s.Session.Token
}

// Begin issues the next token for kind and counts the request as in flight.
func (s *State) Begin(kind RequestKind) uint64 {
	s.latest[kind]++
	s.inFlight++
	return s.latest[kind]
}

// Finish records that a response for kind arrived and reports whether token
// is still the latest one issued for that kind. Every response, stale or not,
// leaves the in-flight count.
func (s *State) Finish(kind RequestKind, token uint64) bool {
	if s.inFlight > 0 {
		s.inFlight--
	}
	return token == s.latest[kind]
}

// Latest returns the last token issued for kind
func (s *State) Latest(kind RequestKind) uint64 {
	return s.latest[kind]
}

// InFlight returns the number of requests awaiting a response
func (s *State) InFlight() int {
	return s.inFlight
}

// Loading reports whether any request is in flight
func (s *State) Loading() bool {
	return s.inFlight > 0
}

// Package config holds engine-wide execution limits and validated
// configuration.
//
// Grounded on the teacher's meta.Config (struct + DefaultConfig +
// Validate returning a *ConfigError) and on
// original_source/src/execution_profile.rs's ExecutionProfile. The
// original carries the profile in a thread_local; Go has no ergonomic
// thread-local equivalent for goroutines, so the idiomatic substitute is
// a value carried on context.Context, set once per top-level call and
// read at the handful of cooperative checkpoints (determinize,
// intersect, generate, synth) the same way the original does.
package config

import (
	"context"
	"time"

	"github.com/RegexSolver/regexsolver/rserr"
)

// ExecutionProfile bounds a single engine call: the largest automaton it
// may build, how many algebra terms it may combine, and how long it may
// run before cooperatively aborting.
type ExecutionProfile struct {
	// MaxStates caps the number of states an automaton built from a
	// regex may have.
	MaxStates int

	// Deadline is when a call sharing this profile must stop; the zero
	// value means "never time out", matching start_execution_time: None.
	Deadline time.Time

	// MaxTerms caps how many operands an engine.Term operation may
	// combine in one call.
	MaxTerms int
}

// DefaultProfile returns the profile used when no profile is attached to
// a context: 8192 states and 50 terms. It arms no deadline, so calls
// running under it never time out.
func DefaultProfile() ExecutionProfile {
	return ExecutionProfile{
		MaxStates: 8192,
		MaxTerms:  50,
	}
}

// WithTimeout returns a copy of p with Deadline armed d from now.
func (p ExecutionProfile) WithTimeout(d time.Duration) ExecutionProfile {
	p.Deadline = time.Now().Add(d)
	return p
}

// CheckTimeout returns *rserr.OperationTimeOutError if Deadline is armed
// and has passed. A zero Deadline never times out.
func (p ExecutionProfile) CheckTimeout() error {
	if p.Deadline.IsZero() {
		return nil
	}
	if time.Now().After(p.Deadline) {
		return &rserr.OperationTimeOutError{}
	}
	return nil
}

// CheckStates returns *rserr.AutomatonHasTooManyStatesError if got exceeds
// MaxStates.
func (p ExecutionProfile) CheckStates(got int) error {
	if got > p.MaxStates {
		return &rserr.AutomatonHasTooManyStatesError{Max: p.MaxStates, Got: got}
	}
	return nil
}

// CheckTerms returns *rserr.TooMuchTermsError if got exceeds MaxTerms.
func (p ExecutionProfile) CheckTerms(got int) error {
	if got > p.MaxTerms {
		return &rserr.TooMuchTermsError{Max: p.MaxTerms, Got: got}
	}
	return nil
}

type profileKey struct{}

// WithProfile returns a context carrying profile, to be read back by
// ProfileFrom at the engine's cooperative checkpoints.
func WithProfile(ctx context.Context, profile ExecutionProfile) context.Context {
	return context.WithValue(ctx, profileKey{}, profile)
}

// ProfileFrom returns the ExecutionProfile carried on ctx, or
// DefaultProfile() if none was attached.
func ProfileFrom(ctx context.Context) ExecutionProfile {
	if p, ok := ctx.Value(profileKey{}).(ExecutionProfile); ok {
		return p
	}
	return DefaultProfile()
}

package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Identity errors
	ErrMsgUnauthenticated = "unauthenticated"

	// Garden errors
	ErrMsgGardenNotFound = "garden not found"
	ErrMsgPlantNotFound  = "plant not found"

	// Action errors
	ErrMsgInvalidAction = "invalid action type"
	ErrMsgOnCooldown    = "action too frequent"

	// Challenge errors
	ErrMsgChallengeNotFound     = "challenge not found"
	ErrMsgChallengeInactive     = "challenge is not active"
	ErrMsgAlreadyParticipating  = "already participating in this challenge"
	ErrMsgChallengeFull         = "challenge is full"
	ErrMsgParticipationNotFound = "participation not found"
	ErrMsgChallengeNotCompleted = "challenge is not completed"
	ErrMsgRewardAlreadyClaimed  = "reward already claimed"

	// Catalog errors
	ErrMsgInvalidCriteria = "invalid achievement criteria"

	// Persistence errors
	ErrMsgConcurrentUpdate = "concurrent update"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUnauthenticated = errors.New(ErrMsgUnauthenticated)

	ErrGardenNotFound = errors.New(ErrMsgGardenNotFound)
	ErrPlantNotFound  = errors.New(ErrMsgPlantNotFound)

	ErrInvalidAction = errors.New(ErrMsgInvalidAction)
	ErrOnCooldown    = errors.New(ErrMsgOnCooldown)

	ErrChallengeNotFound     = errors.New(ErrMsgChallengeNotFound)
	ErrChallengeInactive     = errors.New(ErrMsgChallengeInactive)
	ErrAlreadyParticipating  = errors.New(ErrMsgAlreadyParticipating)
	ErrChallengeFull         = errors.New(ErrMsgChallengeFull)
	ErrParticipationNotFound = errors.New(ErrMsgParticipationNotFound)
	ErrChallengeNotCompleted = errors.New(ErrMsgChallengeNotCompleted)
	ErrRewardAlreadyClaimed  = errors.New(ErrMsgRewardAlreadyClaimed)

	ErrInvalidCriteria = errors.New(ErrMsgInvalidCriteria)

	// ErrConcurrentUpdate is returned by the store when an optimistic version check fails
	ErrConcurrentUpdate = errors.New(ErrMsgConcurrentUpdate)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// ErrorKind is the stable, caller-facing classification of an error
type ErrorKind string

// Error kinds
const (
	KindUnauthenticated ErrorKind = "unauthenticated"
	KindNotFound        ErrorKind = "not_found"
	KindValidation      ErrorKind = "validation"
	KindConflict        ErrorKind = "conflict"
	KindRateLimited     ErrorKind = "rate_limited"
	KindInternal        ErrorKind = "internal"
)

// KindOf classifies an error by walking its chain
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnauthenticated):
		return KindUnauthenticated
	case errors.Is(err, ErrGardenNotFound),
		errors.Is(err, ErrPlantNotFound),
		errors.Is(err, ErrChallengeNotFound),
		errors.Is(err, ErrParticipationNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidAction),
		errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidCriteria),
		errors.Is(err, ErrChallengeInactive),
		errors.Is(err, ErrChallengeNotCompleted):
		return KindValidation
	case errors.Is(err, ErrAlreadyParticipating),
		errors.Is(err, ErrChallengeFull),
		errors.Is(err, ErrRewardAlreadyClaimed),
		errors.Is(err, ErrConcurrentUpdate):
		return KindConflict
	case errors.Is(err, ErrOnCooldown):
		return KindRateLimited
	default:
		return KindInternal
	}
}

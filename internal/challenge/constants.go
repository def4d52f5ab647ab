package challenge

// DefaultMaxRetries bounds optimistic-concurrency retries of one participation write
const DefaultMaxRetries = 3

// Log messages
const (
	LogMsgEnrolled           = "Challenge joined"
	LogMsgCompleted          = "Challenge completed"
	LogMsgProgressAdvanced   = "Challenge progress advanced"
	LogMsgRewardClaimed      = "Challenge reward claimed"
	LogMsgCompensateFailed   = "Failed to revert reward claim after credit failure"
	LogMsgPublishFailed      = "Failed to publish challenge event"
	LogMsgProgressFailed     = "Failed to update challenge progress"
	LogMsgChallengeLookupErr = "Failed to load challenge for participation"
)

// Error messages
const (
	ErrMsgCodeRequired     = "challenge id is required"
	ErrMsgListChallenges   = "failed to list challenges"
	ErrMsgCreditFailed     = "failed to credit challenge reward"
	ErrMsgDecodePayload    = "failed to decode action payload"
	ErrMsgRetriesExhausted = "gave up after %d attempts"
)

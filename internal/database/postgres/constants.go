package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
	// PgErrorCodeForeignKeyViolation is raised when a participation references an unknown challenge
	PgErrorCodeForeignKeyViolation = "23503"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
	LogMsgFailedToRollback          = "Failed to rollback transaction"
)

// Error Messages - Row Operations
const (
	ErrMsgFailedToGetGarden           = "failed to get garden"
	ErrMsgFailedToCreateGarden        = "failed to create garden"
	ErrMsgFailedToUpdateGarden        = "failed to update garden"
	ErrMsgFailedToListAchievements    = "failed to list achievements"
	ErrMsgFailedToUpsertAchievement   = "failed to upsert achievement"
	ErrMsgFailedToListChallenges      = "failed to list challenges"
	ErrMsgFailedToGetChallenge        = "failed to get challenge"
	ErrMsgFailedToUpsertChallenge     = "failed to upsert challenge"
	ErrMsgFailedToGetParticipation    = "failed to get participation"
	ErrMsgFailedToListParticipations  = "failed to list participations"
	ErrMsgFailedToInsertParticipation = "failed to insert participation"
	ErrMsgFailedToReserveSeat         = "failed to reserve challenge seat"
	ErrMsgFailedToUpdateParticipation = "failed to update participation"
	ErrMsgFailedToMarshal             = "failed to marshal %s"
	ErrMsgFailedToUnmarshal           = "failed to unmarshal %s"
)

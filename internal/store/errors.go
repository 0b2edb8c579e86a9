package store

import "errors"

// Domain errors returned by repositories. Match them with [errors.Is].
var (
	// ErrTranscriptionExists is returned when a transcription with the same
	// id is already stored.
	ErrTranscriptionExists = errors.New("transcription already exists")

	// ErrMemosNotSaved is returned when a batch insert succeeds but affects
	// fewer rows than memos supplied.
	ErrMemosNotSaved = errors.New("memos were not saved")

	// ErrUnsupportedDraft is returned for a draft type without a category table.
	ErrUnsupportedDraft = errors.New("unsupported enrichment draft")

	// ErrEmptyMemoID is returned when a draft is not tied to a memo.
	ErrEmptyMemoID = errors.New("draft has no memo id")

	// ErrQueueJobNotFound is returned when a status update matches no job.
	ErrQueueJobNotFound = errors.New("queue job was not found")
)

// Low-level database operation errors.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
	ErrEncodingColumn       = errors.New("failed to encode json column")
	ErrDecodingColumn       = errors.New("failed to decode json column")
)

package session

import "github.com/abhisek/casefile/internal/store"

// resultRecordedMsg reports the outcome of saving a graded test to history.
type resultRecordedMsg struct {
	Result store.TestResult
	Err    error
}

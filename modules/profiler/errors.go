package profiler

import "errors"

var (
	ErrTimeout  = errors.New("wordlist generation timed out")
	ErrCanceled = errors.New("wordlist generation canceled")

	ErrCreateRequest = errors.New("failed to record profiling request")
	ErrListHistory   = errors.New("failed to list profiling history")
)

package profiler

import "time"

// Record is one entry of the generation history.
type Record struct {
	ID         int64     `json:"id" db:"id"`
	TargetName string    `json:"targetName" db:"target_name"`
	WordCount  int       `json:"wordCount" db:"word_count"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

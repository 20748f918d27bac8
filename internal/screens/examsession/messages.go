package examsession

import "time"

// timerTickMsg is sent every second to update the countdown.
type timerTickMsg time.Time

// submitDoneMsg is sent when the attempt submission finishes.
type submitDoneMsg struct {
	AttemptID string
	Err       error
}

// processingDoneMsg is sent when the post-submit processing pause ends
// and the result screen should be shown.
type processingDoneMsg struct {
	AttemptID string
}

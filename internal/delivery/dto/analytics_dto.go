package dto

// StatusCounts carries one counter per appointment status. Every key is
// always present in responses, zero when no appointment holds the status.
type StatusCounts struct {
	Scheduled int64 `json:"scheduled"`
	CheckedIn int64 `json:"checked_in"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
}

type SummaryResponse struct {
	Total          int64        `json:"total"`
	ByStatus       StatusCounts `json:"by_status"`
	CancelRate     float64      `json:"cancel_rate"`
	CompletionRate float64      `json:"completion_rate"`
}

// DayBucketResponse is one calendar date of the by-day breakdown
type DayBucketResponse struct {
	Day       string `json:"day"`
	Scheduled int64  `json:"scheduled"`
	CheckedIn int64  `json:"checked_in"`
	Completed int64  `json:"completed"`
	Cancelled int64  `json:"cancelled"`
	Total     int64  `json:"total"`
}

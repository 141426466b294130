package entities

// MinutesResult is the structured output of the minutes pipeline. Each field
// holds formatted display-ready text or a fixed "none found" placeholder.
// The record is immutable once produced.
type MinutesResult struct {
	Summary     string `json:"summary"`
	Decisions   string `json:"decisions"`
	ActionItems string `json:"action_items"`
	Deadlines   string `json:"deadlines"`
}

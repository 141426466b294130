package entities

import "strings"

// Segment is one timestamped unit of transcribed speech from a transcription
// backend. Times are in seconds from the start of the recording.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// JoinSegments concatenates segment texts with single spaces, skipping empty
// segments and trimming the result. The joined string is the sole input the
// minutes pipeline consumes.
func JoinSegments(segments []Segment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		if text := strings.TrimSpace(seg.Text); text != "" {
			parts = append(parts, text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}

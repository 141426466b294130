package transcribe

import "testing"

func TestParseWhisperOutput(t *testing.T) {
	raw := []byte(`{
		"text": " Hello everyone. Let us begin.",
		"language": "en",
		"segments": [
			{"start": 0.0, "end": 2.1, "text": " Hello everyone."},
			{"start": 2.1, "end": 4.6, "text": " Let us begin."},
			{"start": 4.6, "end": 5.0, "text": "   "}
		]
	}`)

	segments, err := parseWhisperOutput(raw)
	if err != nil {
		t.Fatalf("parseWhisperOutput: %v", err)
	}
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d: %+v", len(segments), segments)
	}
	if segments[0].Text != "Hello everyone." || segments[0].Start != 0.0 || segments[0].End != 2.1 {
		t.Errorf("first segment = %+v", segments[0])
	}
	if segments[1].Text != "Let us begin." {
		t.Errorf("second segment = %+v", segments[1])
	}
}

func TestParseWhisperOutputFallsBackToFullText(t *testing.T) {
	raw := []byte(`{"text": "Just the full text.", "segments": []}`)

	segments, err := parseWhisperOutput(raw)
	if err != nil {
		t.Fatalf("parseWhisperOutput: %v", err)
	}
	if len(segments) != 1 || segments[0].Text != "Just the full text." {
		t.Errorf("segments = %+v", segments)
	}
}

func TestParseWhisperOutputInvalidJSON(t *testing.T) {
	if _, err := parseWhisperOutput([]byte("not json")); err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestParseWhisperOutputEmpty(t *testing.T) {
	segments, err := parseWhisperOutput([]byte(`{"text": "", "segments": []}`))
	if err != nil {
		t.Fatalf("parseWhisperOutput: %v", err)
	}
	if len(segments) != 0 {
		t.Errorf("expected no segments, got %+v", segments)
	}
}

package roomapi

import (
	"errors"
	"strings"
	"testing"
)

func TestTranscriptGetRequest(t *testing.T) {
	req, _ := NewListRequest("http://localhost:3000", "R1")

	tr := NewTranscript()
	tr.BeginRequest(req)

	want := "Sending GET request to:\nhttp://localhost:3000/api/rooms/R1/variables\n\n"
	if tr.String() != want {
		t.Errorf("transcript = %q, want %q", tr.String(), want)
	}
}

func TestTranscriptPostRequestWithPayload(t *testing.T) {
	req, _ := NewUpdateRequest("http://localhost:3000", "R1", "score", "15")

	tr := NewTranscript()
	tr.BeginRequest(req)

	want := "Sending POST request to:\n" +
		"http://localhost:3000/api/rooms/R1/variables/score\n\n" +
		"Payload:\n{\n  \"value\": 15\n}\n\n"
	if tr.String() != want {
		t.Errorf("transcript = %q, want %q", tr.String(), want)
	}
}

func TestTranscriptSuccessPrettyPrintsJSON(t *testing.T) {
	tr := NewTranscript()
	tr.Success(200, []byte(`{"name":"score","value":15}`))

	want := "--- SUCCESS (Status: 200) ---\n" +
		"{\n  \"name\": \"score\",\n  \"value\": 15\n}"
	if tr.String() != want {
		t.Errorf("transcript = %q, want %q", tr.String(), want)
	}
}

func TestTranscriptSuccessFallsBackToRawText(t *testing.T) {
	tr := NewTranscript()
	tr.Success(200, []byte("plain text, not json"))

	want := "--- SUCCESS (Status: 200) ---\nplain text, not json"
	if tr.String() != want {
		t.Errorf("transcript = %q, want %q", tr.String(), want)
	}
}

func TestTranscriptFailureBanners(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantBanner string
	}{
		{
			name:       "network error",
			err:        &APIError{Type: ErrTypeConnectionRefused, Message: "Server refused connection"},
			wantBanner: "--- ERROR ---\n",
		},
		{
			name:       "http status error",
			err:        NewHTTPError(404, "server returned 404 Not Found"),
			wantBanner: "--- ERROR ---\n",
		},
		{
			name:       "invalid method",
			err:        NewInvalidMethodError("PATCH"),
			wantBanner: "--- UNEXPECTED ERROR ---\n",
		},
		{
			name:       "plain error",
			err:        errors.New("something odd"),
			wantBanner: "--- UNEXPECTED ERROR ---\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTranscript()
			tr.Failure(tt.err)

			got := tr.String()
			if !strings.HasPrefix(got, tt.wantBanner) {
				t.Errorf("transcript %q should start with banner %q", got, tt.wantBanner)
			}
			if !strings.Contains(got, tt.err.Error()) {
				t.Errorf("transcript %q should contain the error detail %q", got, tt.err.Error())
			}
		})
	}
}

func TestTranscriptFullRequestLifecycle(t *testing.T) {
	req, _ := NewUpdateRequest("http://localhost:3000", "R1", "score", "15")

	tr := NewTranscript()
	tr.BeginRequest(req)
	tr.Success(200, []byte(`{"name":"score","value":15}`))

	want := "Sending POST request to:\n" +
		"http://localhost:3000/api/rooms/R1/variables/score\n\n" +
		"Payload:\n{\n  \"value\": 15\n}\n\n" +
		"--- SUCCESS (Status: 200) ---\n" +
		"{\n  \"name\": \"score\",\n  \"value\": 15\n}"
	if tr.String() != want {
		t.Errorf("transcript = %q, want %q", tr.String(), want)
	}
}

func TestTranscriptReset(t *testing.T) {
	tr := NewTranscript()
	tr.Success(200, []byte("x"))
	tr.Reset()

	if tr.String() != "" {
		t.Errorf("transcript after Reset = %q, want empty", tr.String())
	}
}

func BenchmarkTranscriptSuccess(b *testing.B) {
	body := []byte(mockVariablesResponse)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr := NewTranscript()
		tr.Success(200, body)
		_ = tr.String()
	}
}

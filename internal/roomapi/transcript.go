package roomapi

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Transcript accumulates the text shown in the response area for a single
// request. The header is written before the call goes out, so the operator
// sees what is being sent while the request is in flight; the outcome is
// appended when the call completes. Each new request starts a fresh
// Transcript, replacing whatever was displayed before.
type Transcript struct {
	b strings.Builder
}

// NewTranscript returns an empty transcript.
func NewTranscript() *Transcript {
	return &Transcript{}
}

// BeginRequest writes the request header: the method, the target URL, and
// the payload when one exists.
func (t *Transcript) BeginRequest(req *Request) {
	fmt.Fprintf(&t.b, "Sending %s request to:\n%s\n\n", req.Method, req.URL)

	if req.Payload != nil {
		data, err := json.MarshalIndent(req.Payload, "", "  ")
		if err != nil {
			// Coerced payloads always marshal; anything else is shown as-is.
			data = []byte(fmt.Sprintf("%v", req.Payload))
		}
		fmt.Fprintf(&t.b, "Payload:\n%s\n\n", data)
	}
}

// Success writes the success banner and the response body. Bodies that parse
// as JSON are pretty-printed; anything else is shown raw.
func (t *Transcript) Success(statusCode int, body []byte) {
	fmt.Fprintf(&t.b, "--- SUCCESS (Status: %d) ---\n", statusCode)

	var decoded any
	if err := json.Unmarshal(body, &decoded); err == nil {
		if pretty, err := json.MarshalIndent(decoded, "", "  "); err == nil {
			t.b.Write(pretty)
			return
		}
	}
	t.b.Write(body)
}

// Failure writes the error banner and the error detail. Network and HTTP
// failures use the request error banner; everything else is reported as
// unexpected.
func (t *Transcript) Failure(err error) {
	if IsRequestError(err) {
		fmt.Fprintf(&t.b, "--- ERROR ---\n%s", err.Error())
		return
	}
	fmt.Fprintf(&t.b, "--- UNEXPECTED ERROR ---\n%s", err.Error())
}

// String returns the accumulated transcript text.
func (t *Transcript) String() string {
	return t.b.String()
}

// Reset clears the transcript for reuse.
func (t *Transcript) Reset() {
	t.b.Reset()
}

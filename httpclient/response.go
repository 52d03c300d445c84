package httpclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	RequestID  string
}

// Decode unmarshals the JSON body into target. An empty body leaves target untouched.
func (r *Response) Decode(target any) error {
	if target == nil || len(r.Body) == 0 {
		return nil
	}

	if err := json.Unmarshal(r.Body, target); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodeResponse, err)
	}

	return nil
}

func (r *Response) IsJSON() bool {
	return strings.HasPrefix(r.Header.Get(HeaderContentType), ContentTypeJSON)
}

type ErrorResponse struct {
	Message json.RawMessage `json:"message"`
	Code    json.RawMessage `json:"code"`
}

const unknownErrorMessage = "Unknown error"

// parseErrorBody extracts a message and an application error code from a failed response.
func parseErrorBody(statusCode int, body []byte) (string, string) {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		if text := strings.TrimSpace(string(body)); text != "" {
			return text, ""
		}

		return "HTTP " + strconv.Itoa(statusCode), ""
	}

	message := rawToString(errResp.Message)
	if message == "" {
		message = unknownErrorMessage
	}

	return message, rawToString(errResp.Code)
}

// rawToString renders a JSON string, number or list of strings as plain text.
func rawToString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return text
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, "; ")
	}

	var number json.Number
	if err := json.Unmarshal(raw, &number); err == nil {
		return number.String()
	}

	return string(raw)
}

package api

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/pandodao/money-tracker/core"
)

// envelope is the {success, data, message} wrapper most endpoints use. Some
// endpoints answer with the bare payload instead.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func (e envelope) message() string {
	if e.Message != "" {
		return e.Message
	}

	return e.Error
}

func (e envelope) hasData() bool {
	return len(e.Data) > 0 && !bytes.Equal(bytes.TrimSpace(e.Data), []byte("null"))
}

// decode normalizes both response shapes into v.
func decode(status int, body []byte, v any) error {
	body = bytes.TrimSpace(body)

	if status < http.StatusOK || status >= http.StatusMultipleChoices {
		return &core.APIError{StatusCode: status, Message: messageOf(body)}
	}

	if len(body) == 0 {
		return malformed(status)
	}

	switch body[0] {
	case '[':
		if err := json.Unmarshal(body, v); err != nil {
			return malformed(status)
		}
		return nil
	case '{':
	default:
		return malformed(status)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return malformed(status)
	}

	if env.Success != nil && !*env.Success {
		return &core.APIError{StatusCode: status, Message: env.message()}
	}

	payload := body
	switch {
	case env.hasData():
		payload = env.Data
	case env.Success != nil:
		// success without data: nothing usable came back
		return malformed(status)
	}

	if v == nil {
		return nil
	}

	if err := json.Unmarshal(payload, v); err != nil {
		return malformed(status)
	}

	return nil
}

func messageOf(body []byte) string {
	var env envelope
	if len(body) == 0 || body[0] != '{' || json.Unmarshal(body, &env) != nil {
		return ""
	}

	return env.message()
}

func malformed(status int) error {
	return &core.APIError{StatusCode: status, Message: "malformed response"}
}

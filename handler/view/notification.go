package view

import (
	"errors"

	"github.com/pandodao/money-tracker/core"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

type Notification struct {
	Kind    Kind   `json:"type"`
	Message string `json:"message"`
	// Dismissible notifications fade out on their own; validation alerts
	// stay until closed.
	Dismissible bool `json:"dismissible"`
}

func Success(message string) *Notification {
	return &Notification{Kind: KindSuccess, Message: message, Dismissible: true}
}

// NotificationFor maps an error to what the user is shown.
func NotificationFor(err error) *Notification {
	var (
		validation *core.ValidationError
		apiErr     *core.APIError
		network    *core.NetworkError
	)

	switch {
	case errors.As(err, &validation):
		return &Notification{Kind: KindWarning, Message: validation.Message}
	case errors.As(err, &apiErr):
		msg := apiErr.Message
		if msg == "" {
			msg = "The request failed, please try again."
		}
		return &Notification{Kind: KindError, Message: msg, Dismissible: true}
	case errors.As(err, &network):
		return &Notification{Kind: KindError, Message: "Could not reach the server, please try again.", Dismissible: true}
	case errors.Is(err, core.ErrSessionActive):
		return &Notification{Kind: KindWarning, Message: "Log out before switching users."}
	default:
		return &Notification{Kind: KindError, Message: "Something went wrong.", Dismissible: true}
	}
}

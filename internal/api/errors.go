package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
)

const (
	MsgNetwork     = "Network error. Please check your connection."
	MsgGeneric     = "Something went wrong. Please try again."
	MsgLoginFailed = "Login failed. Please check your credentials."
)

var (
	// ErrNetwork matches any failure where no HTTP response came back.
	ErrNetwork = errors.New("network unreachable")
	// ErrUnauthorized matches a 401 from the server.
	ErrUnauthorized = errors.New("unauthorized")
)

// NetworkError wraps a transport failure. Its message is the one shown to users.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return MsgNetwork }
func (e *NetworkError) Unwrap() error { return e.Err }
func (e *NetworkError) Is(target error) bool {
	return target == ErrNetwork
}

// ServerError is a non-2xx response. Message is the server's own message when
// the body carried one, otherwise the operation's fallback.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string { return e.Message }
func (e *ServerError) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}

type messageBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func newServerError(status int, body []byte, fallback string) *ServerError {
	var mb messageBody
	msg := ""
	if err := json.Unmarshal(body, &mb); err == nil {
		msg = strings.TrimSpace(mb.Message)
	}
	if msg == "" {
		msg = fallback
	}
	if msg == "" {
		msg = MsgGeneric
	}
	return &ServerError{Status: status, Message: msg}
}

// Message is what a UI shows for err: the verbatim server message, the
// network notice, or fallback for anything else.
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}
	var se *ServerError
	if errors.As(err, &se) {
		return se.Message
	}
	if errors.Is(err, ErrNetwork) {
		return MsgNetwork
	}
	if fallback != "" {
		return fallback
	}
	return err.Error()
}

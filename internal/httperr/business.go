package httperr

import "errors"

// Kind classifica a falha de negócio. O handler traduz o kind para o
// status HTTP correto; o core nunca conhece HTTP.
type Kind string

const (
	KindInvalidInput      Kind = "invalid_input"
	KindNotFound          Kind = "not_found"
	KindInvalidState      Kind = "invalid_state"
	KindConflict          Kind = "conflict"
	KindInvalidTransition Kind = "invalid_transition"
)

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func InvalidInput(code, message string) error {
	return BusinessError{Kind: KindInvalidInput, Code: code, Message: message}
}

func NotFoundErr(code, message string) error {
	return BusinessError{Kind: KindNotFound, Code: code, Message: message}
}

func InvalidState(code, message string) error {
	return BusinessError{Kind: KindInvalidState, Code: code, Message: message}
}

func Conflict(code, message string) error {
	return BusinessError{Kind: KindConflict, Code: code, Message: message}
}

func InvalidTransition(code, message string) error {
	return BusinessError{Kind: KindInvalidTransition, Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

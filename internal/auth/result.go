package auth

import (
	"errors"
	"unicode"
	"unicode/utf8"
)

// ErrNotLoggedIn is returned by operations that need a session when nobody is logged in.
var ErrNotLoggedIn = errors.New("not logged in")

// Result is the outcome of Login or Register. It is either Success or Failure.
type Result interface {
	isResult()
}

// Success means the user is authenticated and the session was written.
type Success struct {
	Username string
	UserID   int64
}

// Failure carries a domain error that the caller shows to the user.
type Failure struct {
	Err *Error
}

func (Success) isResult() {}
func (Failure) isResult() {}

// Kind classifies an authentication failure.
type Kind int

const (
	// KindValidation - некорректный ввод (пустые поля, длина)
	KindValidation Kind = iota + 1
	// KindConflict - username уже занят
	KindConflict
	// KindInvalidCredentials - неверный пароль
	KindInvalidCredentials
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindInvalidCredentials:
		return "invalid_credentials"
	default:
		return "unknown"
	}
}

// Сообщения, которые показываются пользователю как есть
const (
	MessageInvalidPassword = "Invalid password"
	MessageUserExists      = "User already exists"
)

// Error is a domain failure with a message meant for display.
type Error struct {
	cause   error
	Message string
	Kind    Kind
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

func validationFailure(err error) Failure {
	return Failure{Err: &Error{Kind: KindValidation, Message: sentenceCase(err.Error()), cause: err}}
}

func conflictFailure(err error) Failure {
	return Failure{Err: &Error{Kind: KindConflict, Message: MessageUserExists, cause: err}}
}

func invalidPasswordFailure(err error) Failure {
	return Failure{Err: &Error{Kind: KindInvalidCredentials, Message: MessageInvalidPassword, cause: err}}
}

// sentenceCase поднимает первую букву: ошибки Go пишутся со строчной,
// а пользователю показываем предложение
func sentenceCase(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

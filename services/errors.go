package services

import "errors"

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("already exists")
	ErrNotFound     = errors.New("not found")
)

// kindError carries the message shown to clients while still matching one
// of the sentinels above with errors.Is.
type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

func newKindError(kind error, msg string) error {
	return &kindError{msg: msg, kind: kind}
}

var (
	ErrWrongPassword  = newKindError(ErrUnauthorized, "Password incorreta")
	ErrInvalidSession = newKindError(ErrUnauthorized, "Sessão inválida ou expirada")
	ErrWasherExists   = newKindError(ErrConflict, "Lavador já existe")
	ErrCompanyExists  = newKindError(ErrConflict, "Empresa já existe")
	ErrWashNotFound   = newKindError(ErrNotFound, "Lavagem não encontrada")
)

package domain

import "errors"

// Kind classifies a failure so the delivery layer can map it to a status code.
type Kind int

const (
	// KindInternal is any failure not otherwise classified. It is the zero value.
	KindInternal Kind = iota
	KindNotFound
	KindInvalid
	KindConflict
	KindCommit
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalid:
		return "invalid"
	case KindConflict:
		return "conflict"
	case KindCommit:
		return "commit"
	default:
		return "internal"
	}
}

// Error is a classified domain error. Message is safe to return to clients.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error with the same kind and message, so a
// sentinel still matches after a repository attaches the underlying cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind && t.Message == e.Message
}

// Sentinel errors returned by repositories and services.
var (
	ErrNotFound        = &Error{Kind: KindNotFound, Message: "not found"}
	ErrMonikerInUse    = &Error{Kind: KindConflict, Message: "Moniker already in use."}
	ErrInvalidMoniker  = &Error{Kind: KindInvalid, Message: "Could not use current moniker."}
	ErrCampNotExist    = &Error{Kind: KindInvalid, Message: "camp does not exist."}
	ErrSpeakerRequired = &Error{Kind: KindInvalid, Message: "Speaker Id is required."}
	ErrSpeakerNotFound = &Error{Kind: KindInvalid, Message: "Speaker could not be found."}
	ErrCommitFailed    = &Error{Kind: KindCommit, Message: "failed to save changes"}
)

// KindOf returns the Kind of the first *Error in err's chain, or KindInternal.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}

// MessageOf returns the client-facing message of the first *Error in err's chain.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return ""
}

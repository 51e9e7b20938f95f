package infra

import (
	"errors"

	"stayhub/internal/pkg/errs"
)

type StoreErrorKind string

type StoreError struct {
	Kind StoreErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e StoreError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e StoreError) Unwrap() error {
	return e.err
}

// WrapStoreErr tags a low-level store failure with a kind the usecase layer
// can branch on. The default kind is KindStoreFailure.
func WrapStoreErr(msg string, err error, kind ...StoreErrorKind) error {
	k := KindStoreFailure
	if len(kind) > 0 {
		k = kind[0]
	}
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return StoreError{Kind: k, msg: msg, err: err}
}

func IsKind(err error, kind StoreErrorKind) bool {
	var e StoreError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Infrastructure-specific error kinds
const (
	KindNotFound     StoreErrorKind = "NOT_FOUND"
	KindStoreFailure StoreErrorKind = "STORE_FAILURE"
	KindBadRecord    StoreErrorKind = "BAD_RECORD"
)

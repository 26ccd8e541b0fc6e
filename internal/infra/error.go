package infra

import (
	"errors"

	"seapass-bff/internal/pkg/errs"
)

type GatewayErrorKind string

// Infrastructure-specific error kinds
const (
	KindUnavailable  GatewayErrorKind = "UNAVAILABLE"   // transport failure or 5xx
	KindRejected     GatewayErrorKind = "REJECTED"      // upstream said no (4xx)
	KindUnauthorized GatewayErrorKind = "UNAUTHORIZED"  // missing/invalid credential
	KindNotFound     GatewayErrorKind = "NOT_FOUND"     // unknown resource
	KindStoreFailure GatewayErrorKind = "STORE_FAILURE" // key-value store failure
)

type GatewayError struct {
	Kind GatewayErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e GatewayError) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e GatewayError) Unwrap() error {
	return e.err
}

func WrapGatewayErr(kind GatewayErrorKind, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return GatewayError{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind GatewayErrorKind) bool {
	var e GatewayError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

package infra

import (
	"errors"
	"log/slog"

	"dive-booking-gateway/internal/pkg/errs"
)

type UpstreamErrorKind string

// UpstreamError is returned by every outbound WordPress/WooCommerce call.
// Kind separates "could not reach the host" from "host answered with an error".
type UpstreamError struct {
	Kind    UpstreamErrorKind
	Target  string
	Status  int
	Code    string
	Message string
	Body    []byte
	err     error // wrapped low-level error
}

func (e UpstreamError) Error() string {
	s := string(e.Kind) + ": " + e.Target
	if e.Message != "" {
		s += ": " + e.Message
	}
	if e.err != nil {
		s += ": " + e.err.Error()
	}
	return s
}

func (e UpstreamError) Unwrap() error {
	return e.err
}

func (e UpstreamError) Is(target error) bool {
	switch target {
	case errs.ErrUpstreamUnreachable:
		return e.Kind == KindUnreachable
	case errs.ErrUpstreamRejected:
		return e.Kind == KindRejected || e.Kind == KindNotFound
	case errs.ErrProductNotFound, errs.ErrMediaNotFound:
		return e.Kind == KindNotFound && errors.Is(e.err, target)
	}
	return false
}

func WrapUpstreamErr(slogger *slog.Logger, kind UpstreamErrorKind, target string, status int, msg string, err error) error {
	logArgs := []any{
		slog.String("kind", string(kind)),
		slog.String("target", target),
	}
	if status != 0 {
		logArgs = append(logArgs, slog.Int("status", status))
	}
	if err != nil {
		logArgs = append(logArgs, slog.String("error", err.Error()))
	}

	if kind == KindUnreachable {
		slogger.Error("Upstream error: "+msg, logArgs...)
	} else {
		slogger.Warn("Upstream error: "+msg, logArgs...)
	}

	if err != nil {
		err = errs.Wrap(err, msg)
	}

	return UpstreamError{Kind: kind, Target: target, Status: status, Message: msg, err: err}
}

// NewRejectedErr records a non-2xx answer together with the upstream's own code and message.
func NewRejectedErr(slogger *slog.Logger, target string, status int, code, message string, body []byte) error {
	slogger.Warn("Upstream rejected request",
		slog.String("kind", string(KindRejected)),
		slog.String("target", target),
		slog.Int("status", status),
		slog.String("code", code),
	)
	return UpstreamError{
		Kind:    KindRejected,
		Target:  target,
		Status:  status,
		Code:    code,
		Message: message,
		Body:    body,
	}
}

func IsKind(err error, kind UpstreamErrorKind) bool {
	var e UpstreamError
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

func AsUpstreamError(err error) (UpstreamError, bool) {
	var e UpstreamError
	if errors.As(err, &e) {
		return e, true
	}
	return UpstreamError{}, false
}

// Infrastructure-specific error kinds
const (
	KindUnreachable UpstreamErrorKind = "UPSTREAM_UNREACHABLE"
	KindRejected    UpstreamErrorKind = "UPSTREAM_REJECTED"
	KindNotFound    UpstreamErrorKind = "NOT_FOUND"
	KindDecode      UpstreamErrorKind = "UPSTREAM_DECODE"
)

package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Kind classifies an error for the transport boundary.
// The zero value is Upstream so an unclassified error never leaks as a client error.
type Kind int

const (
	KindUpstream Kind = iota
	KindBadRequest
	KindUnauthenticated
	KindForbidden
	KindNotFound
	KindTooManyRequests
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthenticated:
		return "unauthenticated"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindTooManyRequests:
		return "too_many_requests"
	default:
		return "upstream"
	}
}

// HTTPStatus maps the kind to a status code.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindTooManyRequests:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// =====================================================
// ERROR CODES
// =====================================================

const (
	CodeBadRequest       = "BAD_REQUEST"
	CodeValidation       = "VALIDATION_ERROR"
	CodeInvalidID        = "INVALID_ID"
	CodeInvalidQuery     = "INVALID_QUERY"
	CodeUnsupportedType  = "UNSUPPORTED_FILE_TYPE"
	CodeFileTooLarge     = "FILE_TOO_LARGE"
	CodeTokenMissing     = "TOKEN_MISSING"
	CodeTokenExpired     = "TOKEN_EXPIRED"
	CodeTokenInvalid     = "TOKEN_INVALID"
	CodeIdentityNotFound = "IDENTITY_NOT_FOUND"
	CodeInvalidCreds     = "INVALID_CREDENTIALS"
	CodeForbidden        = "FORBIDDEN"
	CodeNotFound         = "NOT_FOUND"
	CodeRateLimited      = "RATE_LIMITED"
	CodeUploadFailed     = "UPLOAD_FAILED"
	CodeInternal         = "INTERNAL_ERROR"
)

// AppError is the single error type services hand to the transport layer.
type AppError struct {
	Kind    Kind
	Code    string
	Message string
	Details map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func (e *AppError) Status() int {
	return e.Kind.HTTPStatus()
}

// WithDetails returns a copy carrying per-field details.
func (e *AppError) WithDetails(details map[string]string) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// Wrap returns a copy that keeps err as the cause.
func (e *AppError) Wrap(err error) *AppError {
	cp := *e
	cp.Err = err
	return &cp
}

// Constructors

func New(kind Kind, code, message string) *AppError {
	return &AppError{Kind: kind, Code: code, Message: message}
}

func BadRequest(code, message string) *AppError {
	return New(KindBadRequest, code, message)
}

func Unauthenticated(code, message string) *AppError {
	return New(KindUnauthenticated, code, message)
}

func Forbidden(message string) *AppError {
	return New(KindForbidden, CodeForbidden, message)
}

func NotFound(resource string) *AppError {
	return New(KindNotFound, CodeNotFound, resource+" not found")
}

func TooManyRequests(message string) *AppError {
	return New(KindTooManyRequests, CodeRateLimited, message)
}

// Upstream wraps a storage or collaborator failure; the cause is logged, never shown.
func Upstream(code string, err error) *AppError {
	return &AppError{Kind: KindUpstream, Code: code, Message: "Internal server error", Err: err}
}

func InvalidID(resource string) *AppError {
	return BadRequest(CodeInvalidID, "Invalid "+resource+" ID")
}

// Validation turns ozzo validation errors into a BadRequest listing every offending field.
func Validation(err error) *AppError {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return BadRequest(CodeValidation, err.Error())
	}

	details := make(map[string]string, len(verrs))
	fields := make([]string, 0, len(verrs))
	for field, ferr := range verrs {
		if ferr == nil {
			continue
		}
		var internal validation.InternalError
		if errors.As(ferr, &internal) {
			return Upstream(CodeInternal, internal.InternalError())
		}
		details[field] = ferr.Error()
		fields = append(fields, field)
	}
	sort.Strings(fields)

	return &AppError{
		Kind:    KindBadRequest,
		Code:    CodeValidation,
		Message: "Invalid fields: " + strings.Join(fields, ", "),
		Details: details,
	}
}

// From converts any error into an *AppError. Unknown errors become Upstream.
func From(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return Validation(verrs)
	}

	return Upstream(CodeInternal, err)
}

// KindOf reports the kind of err, Upstream when unclassified.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUpstream
}

func IsNotFound(err error) bool {
	return err != nil && KindOf(err) == KindNotFound
}

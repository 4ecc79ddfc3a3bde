package errx

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// Type classifies an error independently of its code.
type Type string

const (
	TypeValidation     Type = "VALIDATION"
	TypeNotFound       Type = "NOT_FOUND"
	TypeConflict       Type = "CONFLICT"
	TypeAuthentication Type = "AUTHENTICATION"
	TypeAuthorization  Type = "AUTHORIZATION"
	TypeBusiness       Type = "BUSINESS"
	TypeExternal       Type = "EXTERNAL"
	TypeInternal       Type = "INTERNAL"
)

// defaultStatus is used when an error is built without a registry entry.
func (t Type) defaultStatus() int {
	switch t {
	case TypeValidation:
		return http.StatusBadRequest
	case TypeNotFound:
		return http.StatusNotFound
	case TypeConflict:
		return http.StatusConflict
	case TypeAuthentication:
		return http.StatusUnauthorized
	case TypeAuthorization:
		return http.StatusForbidden
	case TypeBusiness:
		return http.StatusUnprocessableEntity
	case TypeExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// Error is the error value returned across package boundaries.
type Error struct {
	Code       string         `json:"code"`
	Type       Type           `json:"type"`
	Message    string         `json:"message"`
	HTTPStatus int            `json:"-"`
	Details    map[string]any `json:"details,omitempty"`
	Cause      error          `json:"-"`
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

// WithDetail attaches a single key/value detail and returns the same error.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// WithDetails merges details into the error.
func (e *Error) WithDetails(details map[string]any) *Error {
	for k, v := range details {
		e.WithDetail(k, v)
	}
	return e
}

// ToHTTPResponse renders the error body sent to clients.
func (e *Error) ToHTTPResponse() map[string]any {
	resp := map[string]any{
		"error": e.Message,
		"code":  e.Code,
		"type":  e.Type,
	}
	if len(e.Details) > 0 {
		resp["details"] = e.Details
	}
	return resp
}

// New builds an unregistered error.
func New(message string, t Type) *Error {
	return &Error{
		Code:       string(t),
		Type:       t,
		Message:    message,
		HTTPStatus: t.defaultStatus(),
	}
}

// Wrap builds an unregistered error around a cause.
func Wrap(err error, message string, t Type) *Error {
	e := New(message, t)
	e.Cause = err
	return e
}

// IsType reports whether err, or any error it wraps, is an *Error of type t.
func IsType(err error, t Type) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Type == t
	}
	return false
}

// IsCode reports whether err, or any error it wraps, carries the given code.
func IsCode(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == string(code)
	}
	return false
}

// Code identifies a registered error, e.g. "RESUME.NOT_FOUND".
type Code string

type definition struct {
	errType Type
	status  int
	message string
}

// Registry holds the error codes of one bounded context.
type Registry struct {
	prefix string
	mu     sync.RWMutex
	defs   map[Code]definition
}

// NewRegistry creates a new error registry whose codes are prefixed with prefix
func NewRegistry(prefix string) *Registry {
	return &Registry{
		prefix: prefix,
		defs:   make(map[Code]definition),
	}
}

// Register declares a code. Registering the same code twice panics.
func (r *Registry) Register(code string, t Type, status int, message string) Code {
	full := Code(r.prefix + "." + code)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.defs[full]; exists {
		panic(fmt.Sprintf("errx: code %s registered twice", full))
	}
	r.defs[full] = definition{errType: t, status: status, message: message}
	return full
}

// New creates an error for a registered code.
func (r *Registry) New(code Code) *Error {
	r.mu.RLock()
	def, ok := r.defs[code]
	r.mu.RUnlock()
	if !ok {
		return New(fmt.Sprintf("unregistered error code %s", code), TypeInternal)
	}
	return &Error{
		Code:       string(code),
		Type:       def.errType,
		Message:    def.message,
		HTTPStatus: def.status,
	}
}

// NewWithCause creates an error for a registered code wrapping err.
func (r *Registry) NewWithCause(code Code, err error) *Error {
	e := r.New(code)
	e.Cause = err
	return e
}

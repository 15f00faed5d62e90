// Package apierror defines the typed error layer of the SDK. Every failed
// client operation is wrapped in an *Error carrying the SDK error class
// (numeric code plus a stable "BITPAY-…" tag) and, when the API reported
// one, the API's own error code. The original cause stays reachable through
// errors.Unwrap / errors.As.
package apierror

import "fmt"

// Error is a classified SDK failure.
type Error struct {
	// Code is the SDK error class code, e.g. 122 for payout creation.
	Code int
	// Tag is the stable class identifier, e.g. "BITPAY-PAYOUT-CREATE".
	Tag string
	// Message is the human-readable class description.
	Message string
	// APICode is the error code reported by the API, "000000" when the
	// failure never reached it.
	APICode string

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Tag, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Tag, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// Is matches two *Error values by class code, so callers can compare against
// a class sentinel with errors.Is regardless of the wrapped cause.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Class describes one error class. Classes are declared once in classes.go
// and used as factories.
type Class struct {
	Code    int
	Tag     string
	Message string
}

// Wrap builds an *Error of this class around cause. A nil cause is allowed
// for failures detected by the SDK itself.
func (c Class) Wrap(cause error) *Error {
	return &Error{Code: c.Code, Tag: c.Tag, Message: c.Message, APICode: "000000", cause: cause}
}

// WrapAPI builds an *Error of this class carrying the code the API reported.
func (c Class) WrapAPI(apiCode string, cause error) *Error {
	e := c.Wrap(cause)
	if apiCode != "" {
		e.APICode = apiCode
	}
	return e
}

// Sentinel returns a cause-less instance of the class for errors.Is
// comparisons.
func (c Class) Sentinel() *Error { return c.Wrap(nil) }

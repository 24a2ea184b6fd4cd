package roomapi

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"strings"
	"syscall"
)

// Error types for room API operations

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeMissingInput indicates a required field was left empty;
	// no request is sent when this occurs
	ErrTypeMissingInput ErrorType = iota
	// ErrTypeInvalidMethod indicates an unsupported HTTP method; the
	// dispatcher rejects these before any network activity
	ErrTypeInvalidMethod
	// ErrTypeNetwork indicates a network-level error (unreachable host, etc.)
	ErrTypeNetwork
	// ErrTypeTimeout indicates the request exceeded the 5 second budget
	ErrTypeTimeout
	// ErrTypeConnectionRefused indicates the server refused the connection
	ErrTypeConnectionRefused
	// ErrTypeDNS indicates a DNS resolution failure
	ErrTypeDNS
	// ErrTypeHTTP indicates the server answered with a status of 400 or above
	ErrTypeHTTP
	// ErrTypeUnexpected indicates an unknown or unexpected error
	ErrTypeUnexpected
)

// NetworkErrorSubtype provides more specific network error classification
type NetworkErrorSubtype int

const (
	NetworkErrorGeneral NetworkErrorSubtype = iota
	NetworkErrorTimeout
	NetworkErrorConnectionRefused
	NetworkErrorDNS
	NetworkErrorHostUnreachable
	NetworkErrorNetworkUnreachable
)

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeMissingInput:
		return "Input Missing"
	case ErrTypeInvalidMethod:
		return "Invalid Method"
	case ErrTypeNetwork:
		return "Network Error"
	case ErrTypeTimeout:
		return "Timeout"
	case ErrTypeConnectionRefused:
		return "Connection Refused"
	case ErrTypeDNS:
		return "DNS Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	case ErrTypeUnexpected:
		return "Unexpected Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// APIError represents an error that occurred while talking to a room server
type APIError struct {
	Type           ErrorType           // Category of error
	Message        string              // Human-readable error message
	StatusCode     int                 // HTTP status code (if applicable)
	Err            error               // Underlying error (if any)
	NetworkSubtype NetworkErrorSubtype // More specific network error type
	BaseURL        string              // Server base URL (for context)
}

// Error implements the error interface
func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error chain inspection
func (e *APIError) Unwrap() error {
	return e.Err
}

// ClassifyNetworkError analyzes an error and returns a more specific error type
func ClassifyNetworkError(err error, baseURL string) *APIError {
	if err == nil {
		return nil
	}

	// Check for timeout errors
	if os.IsTimeout(err) || errors.Is(err, context.DeadlineExceeded) {
		return &APIError{
			Type:           ErrTypeTimeout,
			Message:        "Request timed out",
			Err:            err,
			NetworkSubtype: NetworkErrorTimeout,
			BaseURL:        baseURL,
		}
	}

	// Check for DNS errors
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return &APIError{
			Type:           ErrTypeDNS,
			Message:        fmt.Sprintf("DNS resolution failed for %s", dnsErr.Name),
			Err:            err,
			NetworkSubtype: NetworkErrorDNS,
			BaseURL:        baseURL,
		}
	}

	// Check for connection refused and unreachable hosts
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if errors.Is(opErr.Err, syscall.ECONNREFUSED) {
			return &APIError{
				Type:           ErrTypeConnectionRefused,
				Message:        "Server refused connection",
				Err:            err,
				NetworkSubtype: NetworkErrorConnectionRefused,
				BaseURL:        baseURL,
			}
		}
		if errors.Is(opErr.Err, syscall.EHOSTUNREACH) {
			return &APIError{
				Type:           ErrTypeNetwork,
				Message:        "Host unreachable",
				Err:            err,
				NetworkSubtype: NetworkErrorHostUnreachable,
				BaseURL:        baseURL,
			}
		}
		if errors.Is(opErr.Err, syscall.ENETUNREACH) {
			return &APIError{
				Type:           ErrTypeNetwork,
				Message:        "Network unreachable",
				Err:            err,
				NetworkSubtype: NetworkErrorNetworkUnreachable,
				BaseURL:        baseURL,
			}
		}
	}

	// Check for URL errors
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		// Recursively classify the underlying error
		classified := ClassifyNetworkError(urlErr.Err, baseURL)
		if classified != nil {
			classified.Err = err
			return classified
		}
	}

	// Generic network error
	return &APIError{
		Type:           ErrTypeNetwork,
		Message:        "Network error occurred",
		Err:            err,
		NetworkSubtype: NetworkErrorGeneral,
		BaseURL:        baseURL,
	}
}

// NewMissingInputError creates an error for an empty required field
func NewMissingInputError(message string) *APIError {
	return &APIError{
		Type:    ErrTypeMissingInput,
		Message: message,
	}
}

// NewInvalidMethodError creates an error for an unsupported HTTP method
func NewInvalidMethodError(method string) *APIError {
	return &APIError{
		Type:    ErrTypeInvalidMethod,
		Message: fmt.Sprintf("Unsupported method '%s'", method),
	}
}

// NewNetworkError creates a network-level error with automatic classification
func NewNetworkError(message string, err error) *APIError {
	classified := ClassifyNetworkError(err, "")
	if classified != nil {
		classified.Message = message
		return classified
	}
	return &APIError{
		Type:    ErrTypeNetwork,
		Message: message,
		Err:     err,
	}
}

// NewHTTPError creates an error for a response with status 400 or above
func NewHTTPError(statusCode int, message string) *APIError {
	return &APIError{
		Type:       ErrTypeHTTP,
		Message:    message,
		StatusCode: statusCode,
	}
}

// NewUnexpectedError creates a catch-all error
func NewUnexpectedError(message string, err error) *APIError {
	return &APIError{
		Type:    ErrTypeUnexpected,
		Message: message,
		Err:     err,
	}
}

// IsMissingInputError checks if an error is a missing-input error
func IsMissingInputError(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Type == ErrTypeMissingInput
	}
	return false
}

// IsInvalidMethodError checks if an error is an invalid-method error
func IsInvalidMethodError(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Type == ErrTypeInvalidMethod
	}
	return false
}

// IsNetworkError checks if an error is a network error (including timeout,
// connection refused, DNS, etc.)
func IsNetworkError(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Type == ErrTypeNetwork ||
			apiErr.Type == ErrTypeTimeout ||
			apiErr.Type == ErrTypeConnectionRefused ||
			apiErr.Type == ErrTypeDNS
	}
	return false
}

// IsHTTPError checks if an error is an HTTP status error
func IsHTTPError(err error) bool {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr.Type == ErrTypeHTTP
	}
	return false
}

// IsRequestError reports whether the error belongs on the request error
// display path (network and HTTP failures) as opposed to the unexpected one.
func IsRequestError(err error) bool {
	return IsNetworkError(err) || IsHTTPError(err)
}

// GetErrorTitle returns the notification title for an error, matching the
// three failure notifications the console raises.
func GetErrorTitle(err error) string {
	if IsMissingInputError(err) {
		return "Input Missing"
	}
	if IsRequestError(err) {
		return "Request Error"
	}
	return "Unexpected Error"
}

// GetTroubleshootingHint returns user-friendly troubleshooting advice for an error
func GetTroubleshootingHint(err error) string {
	apiErr, ok := err.(*APIError)
	if !ok {
		return "An unexpected error occurred. Please try again."
	}

	switch apiErr.Type {
	case ErrTypeMissingInput:
		return apiErr.Message

	case ErrTypeInvalidMethod:
		return "Only GET and POST requests are supported."

	case ErrTypeTimeout:
		return strings.Join([]string{
			"The server did not respond within 5 seconds.",
			"Troubleshooting:",
			"  • Check that the room server is running",
			"  • Verify the base URL and port are correct",
			"  • Try 'roomvar scan' to locate servers on the network",
		}, "\n")

	case ErrTypeConnectionRefused:
		return strings.Join([]string{
			"The server refused the connection.",
			"Troubleshooting:",
			"  • Ensure the room server is running on that port (default is 3000)",
			"  • Check the base URL for typos",
			"  • Start a practice server with 'roomvar-server' to test against",
		}, "\n")

	case ErrTypeDNS:
		return strings.Join([]string{
			"Could not resolve the server hostname.",
			"Troubleshooting:",
			"  • Use the IP address instead of a hostname",
			"  • Check your network DNS settings",
			"  • Verify you're on the same network as the server",
		}, "\n")

	case ErrTypeNetwork:
		hint := []string{"Network communication failed."}

		switch apiErr.NetworkSubtype {
		case NetworkErrorHostUnreachable:
			hint = append(hint, "The server is not reachable on the network.",
				"Troubleshooting:",
				"  • Verify the server address is correct",
				"  • Check that you're on the same network as the server",
				"  • Ensure the server machine is powered on and connected")

		case NetworkErrorNetworkUnreachable:
			hint = append(hint, "Your computer cannot reach the server's network.",
				"Troubleshooting:",
				"  • Check your network connection",
				"  • Verify the base URL points at the right network")

		default:
			hint = append(hint, "Troubleshooting:",
				"  • Check your network connection",
				"  • Verify the room server is running",
				"  • Try 'roomvar scan' to locate servers on the network")
		}

		return strings.Join(hint, "\n")

	case ErrTypeHTTP:
		if apiErr.StatusCode == 404 {
			return strings.Join([]string{
				"The server could not find the requested resource.",
				"Troubleshooting:",
				"  • Check the room ID - it must match an existing room",
				"  • For updates, the variable must already exist (create it first)",
			}, "\n")
		}
		if apiErr.StatusCode >= 500 {
			return strings.Join([]string{
				fmt.Sprintf("The server returned an error (HTTP %d).", apiErr.StatusCode),
				"This is a server-side problem.",
				"Troubleshooting:",
				"  • Check the server logs",
				"  • Try the request again once the server recovers",
			}, "\n")
		}
		return fmt.Sprintf("The server returned HTTP %d. Check the request parameters.", apiErr.StatusCode)

	default:
		return "An error occurred. Please check the error message for details."
	}
}

// GetShortErrorMessage returns a concise, user-friendly error message
func GetShortErrorMessage(err error) string {
	apiErr, ok := err.(*APIError)
	if !ok {
		return err.Error()
	}

	switch apiErr.Type {
	case ErrTypeMissingInput:
		return apiErr.Message
	case ErrTypeInvalidMethod:
		return apiErr.Message
	case ErrTypeTimeout:
		return "Server not responding (timeout)"
	case ErrTypeConnectionRefused:
		return "Connection refused - is the room server running?"
	case ErrTypeDNS:
		return "Cannot resolve server hostname"
	case ErrTypeNetwork:
		switch apiErr.NetworkSubtype {
		case NetworkErrorHostUnreachable:
			return "Server unreachable - check network connection"
		case NetworkErrorNetworkUnreachable:
			return "Network unreachable - check connection"
		default:
			return "Network error - check connection"
		}
	case ErrTypeHTTP:
		return fmt.Sprintf("Server error (HTTP %d)", apiErr.StatusCode)
	default:
		return apiErr.Message
	}
}

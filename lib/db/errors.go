package db

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"syscall"
)

var connectivityErrs = []error{
	syscall.ECONNRESET,
	syscall.ECONNREFUSED,
	syscall.ECONNABORTED,
	syscall.EHOSTUNREACH,
	syscall.ENETUNREACH,
	syscall.EPIPE,
	io.EOF,
	io.ErrUnexpectedEOF,
	driver.ErrBadConn,
}

// Some drivers flatten the underlying network error into a string.
var connectivityMessages = []string{
	"connection refused",
	"connection reset by peer",
	"broken pipe",
	"no such host",
	"i/o timeout",
}

// ConnectivityError is returned when a database cannot be reached.
type ConnectivityError struct {
	err error
}

func NewConnectivityError(err error) *ConnectivityError {
	return &ConnectivityError{err: err}
}

func (c *ConnectivityError) Error() string {
	return fmt.Sprintf("connectivity error: %v", c.err)
}

func (c *ConnectivityError) Unwrap() error {
	return c.err
}

// QueryError is returned when the database rejects a statement, e.g. malformed SQL, a missing table or a constraint violation.
type QueryError struct {
	Query string
	err   error
}

func NewQueryError(query string, err error) *QueryError {
	return &QueryError{Query: query, err: err}
}

func (q *QueryError) Error() string {
	return fmt.Sprintf("query error: %v", q.err)
}

func (q *QueryError) Unwrap() error {
	return q.err
}

func isConnectivityError(err error) bool {
	if err == nil {
		return false
	}

	for _, connectivityErr := range connectivityErrs {
		if errors.Is(err, connectivityErr) {
			return true
		}
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	msg := err.Error()
	for _, connectivityMessage := range connectivityMessages {
		if strings.Contains(msg, connectivityMessage) {
			return true
		}
	}

	return false
}

// IsConnectivityError returns true if [err] is (or wraps) a [ConnectivityError].
func IsConnectivityError(err error) bool {
	var connectivityErr *ConnectivityError
	return errors.As(err, &connectivityErr)
}

// IsQueryError returns true if [err] is (or wraps) a [QueryError].
func IsQueryError(err error) bool {
	var queryErr *QueryError
	return errors.As(err, &queryErr)
}

// Classify wraps a driver error as either a [ConnectivityError] or a [QueryError].
// Context cancellation and errors that are already classified are returned as-is.
func Classify(query string, err error) error {
	switch {
	case err == nil:
		return nil
	case IsConnectivityError(err), IsQueryError(err):
		return err
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case isConnectivityError(err):
		return NewConnectivityError(err)
	default:
		return NewQueryError(query, err)
	}
}

package db

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

// Postgres error classes that behave like transient single-writer lock
// contention: the statement can be retried as-is and may succeed.
const (
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"

	codeUniqueViolation = "23505"
)

// IsLockContention reports whether err is a transient write-contention
// failure worth retrying. The string fallback covers embedded stores that
// report a plain "database is locked" condition.
func IsLockContention(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch string(pqErr.Code) {
		case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
			return true
		}
		return false
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "database table is locked")
}

// IsUniqueViolation reports whether err is a duplicate-key constraint
// failure. Never retried as-is: the same statement would fail again.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == codeUniqueViolation
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}

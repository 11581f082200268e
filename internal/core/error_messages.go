// Package core maps the technical errors of the cleaning and profiling runs
// to short user-facing messages with codes.
//
// # Error Codes Reference
//
// When a run fails, main prints the mapped message and its code; the code
// identifies the failure class when reading logs.
//
// # File Errors (FILE001-FILE099)
//
//	FILE002 - Invalid CSV: A row does not have the expected number of fields
//	          Action: Every row of the source must have the same column count
//	          Patterns: "invalid csv"
//
//	FILE005 - Empty file: The source file has no rows
//	          Action: Check the file was exported completely
//	          Patterns: "empty file"
//
//	FILE006 - Missing file: The source file does not exist
//	          Action: Check the path or set AUTO_SOURCE_PATH / STUDENT_SOURCE_PATH
//	          Patterns: "no such file", "cannot find the file"
//
//	FILE007 - Permission denied: The file could not be read or written
//	          Action: Check file and directory permissions
//	          Patterns: "permission denied"
//
// # Validation Errors (VAL001-VAL099)
//
//	VAL002 - Invalid number: A numeric column holds text
//	         Action: Fix the value named in the error or mark it missing
//	         Patterns: "invalid number"
//
//	VAL003 - Missing value: A column that must be complete has gaps
//	         Action: Fill or drop the missing cells before this step
//	         Patterns: "missing value"
//
//	VAL005 - Column not found: A column the run needs is absent
//	         Action: Check the header or the column layout of the source
//	         Patterns: "column not found"
//
// # Cleaning Errors (CLN001-CLN099)
//
//	CLN001 - Division by zero: A unit conversion met a zero value
//	         Action: Remove or correct zero entries in the mpg columns
//	         Patterns: "division by zero"
//
//	CLN002 - Bad scale: A column cannot be scaled by its maximum
//	         Action: Check the column holds positive measurements
//	         Patterns: "maximum is not positive"
//
//	CLN003 - No values: A column has nothing to average or bin
//	         Action: Check the column is populated in the source
//	         Patterns: "no values"
//
// # Run Errors (RUN001-RUN099)
//
//	RUN001 - Cancelled: The run was interrupted
//	         Action: Run it again
//	         Patterns: "context canceled"
//
//	RUN002 - Timed out: The run exceeded RUN_TIMEOUT
//	         Action: Raise RUN_TIMEOUT or use a smaller file
//	         Patterns: "context deadline exceeded"
//
// # Configuration Errors (CFG001-CFG099)
//
//	CFG001 - Invalid configuration: An environment setting is invalid
//	         Action: Fix the settings listed in the error
//	         Patterns: "config load", "config validation"
//
//	CFG002 - Unknown format: The requested report format is not supported
//	         Action: Use text or json
//	         Patterns: "unknown profile format"
//
// # Default Error (ERR000)
//
//	ERR000 - Unknown error: An unexpected error occurred
//	         Action: Check the log output for details
//
// Patterns are matched case-insensitively with strings.Contains and the
// first match wins, so specific patterns come before general ones.
package core

import (
	"fmt"
	"strings"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened
	Action  string // What to do about it
	Code    string // Error code
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

var (
	missingFile = UserMessage{
		Message: "The source file does not exist",
		Action:  "Check the path or set AUTO_SOURCE_PATH / STUDENT_SOURCE_PATH",
		Code:    "FILE006",
	}
	badConfig = UserMessage{
		Message: "Invalid configuration",
		Action:  "Fix the settings listed in the error",
		Code:    "CFG001",
	}
)

// errorPatterns maps technical error patterns (case-insensitive) to user
// messages. Order matters: the first match wins.
var errorPatterns = []errorPattern{
	// Configuration
	{pattern: "config load", msg: badConfig},
	{pattern: "config validation", msg: badConfig},
	{
		pattern: "unknown profile format",
		msg: UserMessage{
			Message: "The requested report format is not supported",
			Action:  "Use text or json",
			Code:    "CFG002",
		},
	},

	// Run lifecycle
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "The run was interrupted",
			Action:  "Run it again",
			Code:    "RUN001",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "The run timed out",
			Action:  "Raise RUN_TIMEOUT or use a smaller file",
			Code:    "RUN002",
		},
	},

	// Files
	{pattern: "no such file", msg: missingFile},
	{pattern: "cannot find the file", msg: missingFile},
	{
		pattern: "permission denied",
		msg: UserMessage{
			Message: "The file could not be read or written",
			Action:  "Check file and directory permissions",
			Code:    "FILE007",
		},
	},
	{
		pattern: "invalid csv",
		msg: UserMessage{
			Message: "A row does not have the expected number of fields",
			Action:  "Every row of the source must have the same column count",
			Code:    "FILE002",
		},
	},
	{
		pattern: "empty file",
		msg: UserMessage{
			Message: "The source file has no rows",
			Action:  "Check the file was exported completely",
			Code:    "FILE005",
		},
	},

	// Validation
	{
		pattern: "invalid number",
		msg: UserMessage{
			Message: "A numeric column holds text",
			Action:  "Fix the value named in the error or mark it missing",
			Code:    "VAL002",
		},
	},
	{
		pattern: "missing value",
		msg: UserMessage{
			Message: "A column that must be complete has gaps",
			Action:  "Fill or drop the missing cells before this step",
			Code:    "VAL003",
		},
	},
	{
		pattern: "column not found",
		msg: UserMessage{
			Message: "A column the run needs is absent",
			Action:  "Check the header or the column layout of the source",
			Code:    "VAL005",
		},
	},

	// Cleaning
	{
		pattern: "division by zero",
		msg: UserMessage{
			Message: "A unit conversion met a zero value",
			Action:  "Remove or correct zero entries in the mpg columns",
			Code:    "CLN001",
		},
	},
	{
		pattern: "maximum is not positive",
		msg: UserMessage{
			Message: "A column cannot be scaled by its maximum",
			Action:  "Check the column holds positive measurements",
			Code:    "CLN002",
		},
	},
	{
		pattern: "no values",
		msg: UserMessage{
			Message: "A column has nothing to average or bin",
			Action:  "Check the column is populated in the source",
			Code:    "CLN003",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Check the log output for details",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// If no pattern matches, the ERR000 fallback is returned.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	errStr := strings.ToLower(err.Error())

	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err matches a known pattern rather than the
// ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError pairs a technical error with its user-facing message.
type UserError struct {
	Technical error       // Original error for logging
	User      UserMessage // Message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError maps err to a UserError. Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}

package features

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyConsumption = errors.New("consumption must contain at least one usage limit")
	ErrBlankService     = errors.New("service name must not be blank")
	ErrBlankUsageLimit  = errors.New("usage limit name must not be blank")

	// ErrMalformedEvaluation reports an evaluation document whose shape does
	// not match the remote service's wire contract, including error objects
	// with a code the client does not know.
	ErrMalformedEvaluation = errors.New("feature evaluation document has unexpected shape")
)

// Code identifies the kind of failure the evaluation authority reported.
type Code string

const (
	CodeEvaluationError            Code = "EVALUATION_ERROR"
	CodeFlagNotFound               Code = "FLAG_NOT_FOUND"
	CodeGeneral                    Code = "GENERAL"
	CodeInvalidExpectedConsumption Code = "INVALID_EXPECTED_CONSUMPTION"
	CodeParseError                 Code = "PARSE_ERROR"
	CodeTypeMismatch               Code = "TYPE_MISMATCH"
)

var knownCodes = map[Code]struct{}{
	CodeEvaluationError:            {},
	CodeFlagNotFound:               {},
	CodeGeneral:                    {},
	CodeInvalidExpectedConsumption: {},
	CodeParseError:                 {},
	CodeTypeMismatch:               {},
}

// EvaluationError is a terminal, non-retryable failure reported by the
// evaluation authority. It carries the authority's original code and
// message verbatim.
type EvaluationError struct {
	Code    Code
	Message string
}

func (e *EvaluationError) Error() string {
	msg := e.Message
	if !strings.HasSuffix(msg, ".") {
		msg += "."
	}
	return fmt.Sprintf("%s Error code: %s", msg, e.Code)
}

func newEvaluationError(code, message string) (*EvaluationError, error) {
	c := Code(code)
	if _, ok := knownCodes[c]; !ok {
		return nil, errors.Join(ErrMalformedEvaluation, fmt.Errorf("unknown error code %q", code))
	}
	return &EvaluationError{Code: c, Message: message}, nil
}

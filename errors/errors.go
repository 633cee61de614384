// Copyright 2024 The Tektite Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors

import (
	"fmt"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
	log "github.com/spirit-labs/colcmp/logger"
)

type ErrorCode int

const (
	ParseError ErrorCode = iota + 1000
	ArgumentError
	TypeMismatchError
	InvalidLiteralError
	UnsupportedTypeError ErrorCode = iota + 2000
	InvalidConfiguration ErrorCode = iota + 3000
	InternalError        ErrorCode = iota + 5000
)

func (c ErrorCode) String() string {
	switch c {
	case ParseError:
		return "ParseError"
	case ArgumentError:
		return "ArgumentError"
	case TypeMismatchError:
		return "TypeMismatchError"
	case InvalidLiteralError:
		return "InvalidLiteralError"
	case UnsupportedTypeError:
		return "UnsupportedTypeError"
	case InvalidConfiguration:
		return "InvalidConfiguration"
	case InternalError:
		return "InternalError"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

// KernelError is returned for all failures that are attributable to the query being evaluated, as opposed to
// plumbing failures which are wrapped with a stack.
type KernelError struct {
	Code ErrorCode
	Msg  string
}

func (k KernelError) Error() string {
	return k.Msg
}

func NewKernelErrorf(errorCode ErrorCode, msgFormat string, args ...interface{}) KernelError {
	return KernelError{Code: errorCode, Msg: fmt.Sprintf(msgFormat, args...)}
}

func NewKernelError(errorCode ErrorCode, msg string) KernelError {
	return KernelError{Code: errorCode, Msg: msg}
}

func NewParseError(msg string) error {
	return NewKernelError(ParseError, msg)
}

func NewArgumentErrorf(msgFormat string, args ...interface{}) error {
	return NewKernelErrorf(ArgumentError, msgFormat, args...)
}

func NewTypeMismatchErrorf(msgFormat string, args ...interface{}) error {
	return NewKernelErrorf(TypeMismatchError, msgFormat, args...)
}

func NewInvalidLiteralErrorf(msgFormat string, args ...interface{}) error {
	return NewKernelErrorf(InvalidLiteralError, msgFormat, args...)
}

func NewUnsupportedTypeErrorf(msgFormat string, args ...interface{}) error {
	return NewKernelErrorf(UnsupportedTypeError, msgFormat, args...)
}

func NewInvalidConfigurationError(msg string) error {
	return NewKernelErrorf(InvalidConfiguration, "invalid configuration: %s", msg)
}

func NewInternalError(cause error) KernelError {
	// The cause is only logged, the caller gets the reference
	ref := fmt.Sprintf("colcmp-internal-err-reference-%s", uuid.New().String())
	log.Errorf("internal error with reference %s: %+v", ref, cause)
	return NewKernelErrorf(InternalError, "an internal error has occurred - please search logs for reference: %s", ref)
}

func IsKernelErrorWithCode(err error, code ErrorCode) bool {
	var kerr KernelError
	if As(err, &kerr) {
		return kerr.Code == code
	}
	return false
}

func Error(msg string) error {
	return pkgerrors.New(msg)
}

func New(msg string) error {
	return pkgerrors.New(msg)
}

func Errorf(format string, args ...interface{}) error {
	return pkgerrors.Errorf(format, args...)
}

func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

func Wrap(err error, msg string) error {
	return pkgerrors.Wrap(err, msg)
}

func As(err error, target interface{}) bool {
	return pkgerrors.As(err, target)
}

func Is(err error, target error) bool {
	return pkgerrors.Is(err, target)
}

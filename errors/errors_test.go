package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInternalErrorHidesCause(t *testing.T) {
	err := NewInternalError(New("dictionary id out of range"))
	require.True(t, IsKernelErrorWithCode(err, InternalError))
	require.NotContains(t, err.Error(), "dictionary id out of range")
	require.True(t, strings.HasPrefix(err.Error(),
		"an internal error has occurred - please search logs for reference: colcmp-internal-err-reference-"))

	other := NewInternalError(New("dictionary id out of range"))
	require.NotEqual(t, err.Error(), other.Error())
}

func TestIsKernelErrorWithCode(t *testing.T) {
	err := WithStack(NewArgumentErrorf("unknown column '%s'", "x"))
	require.True(t, IsKernelErrorWithCode(err, ArgumentError))
	require.False(t, IsKernelErrorWithCode(err, ParseError))
	require.False(t, IsKernelErrorWithCode(New("plain"), ArgumentError))
	require.Equal(t, "unknown column 'x'", err.Error())
}

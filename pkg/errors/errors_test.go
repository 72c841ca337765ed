package errors

import (
	stdErrors "errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatErrorNamesField(t *testing.T) {
	t.Parallel()

	err := NewFormatError("theme.colors.primary", "hsl(720, 150%, 50%)", "not a recognised color")

	var formatErr *FormatError
	require.ErrorAs(t, err, &formatErr)
	require.Equal(t, "theme.colors.primary", formatErr.Field)
	require.Equal(t, "hsl(720, 150%, 50%)", formatErr.Value)
	require.Contains(t, err.Error(), "theme.colors.primary")
}

func TestStructuralErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("expected string")
	err := NewStructuralError("theme.name", "must be a string", underlying)

	var structuralErr *StructuralError
	require.ErrorAs(t, err, &structuralErr)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "structural error: theme.name: must be a string", err.Error())
}

func TestSecurityRejectionWithoutField(t *testing.T) {
	t.Parallel()

	err := NewSecurityRejection("", "sanitized theme no longer valid", nil)
	require.Equal(t, "security rejection: sanitized theme no longer valid", err.Error())
}

func TestIOErrorIncludesSourceAndOp(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("permission denied")
	err := NewIOError("clipboard", "read", underlying)

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	require.Equal(t, "clipboard", ioErr.Source)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "read clipboard")
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var f *FormatError
	var s *StructuralError
	var r *SecurityRejection
	var i *IOError

	require.Empty(t, f.Error())
	require.Empty(t, s.Error())
	require.Nil(t, s.Unwrap())
	require.Empty(t, r.Error())
	require.Nil(t, r.Unwrap())
	require.Empty(t, i.Error())
	require.Nil(t, i.Unwrap())
}

func TestViolationsCollectMessages(t *testing.T) {
	t.Parallel()

	var v Violations
	require.NoError(t, v.Err())

	v = append(v,
		NewStructuralError("version", "is required", nil),
		nil,
		NewFormatError("exportedAt", "yesterday", "must be an ISO-8601 date-time"),
	)

	require.Error(t, v.Err())
	require.Equal(t, []string{
		"structural error: version: is required",
		"format error: exportedAt: must be an ISO-8601 date-time",
	}, v.Messages())
	require.Contains(t, v.Error(), "; ")
}

func TestViolationsUnwrapForErrorsAs(t *testing.T) {
	t.Parallel()

	v := Violations{
		NewStructuralError("name", "is required", nil),
		NewFormatError("colors.text", "nope", "not a color"),
	}

	var formatErr *FormatError
	require.ErrorAs(t, v, &formatErr)
	require.Equal(t, "colors.text", formatErr.Field)
}

func TestFieldOf(t *testing.T) {
	t.Parallel()

	require.Equal(t, "a", FieldOf(NewFormatError("a", "", "")))
	require.Equal(t, "b", FieldOf(NewStructuralError("b", "", nil)))
	require.Equal(t, "c", FieldOf(NewSecurityRejection("c", "", nil)))
	require.Equal(t, "", FieldOf(NewIOError("file", "read", stdErrors.New("x"))))
	require.Equal(t, "", FieldOf(nil))
}

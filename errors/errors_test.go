package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap_Format(t *testing.T) {
	err := Wrap(ErrUnknownDataType, "Registry", "Lookup", "descriptor lookup")
	require.Error(t, err)
	assert.Equal(t,
		"Registry.Lookup: descriptor lookup failed: data type does not exist",
		err.Error())
	assert.True(t, Is(err, ErrUnknownDataType))
}

func TestWrap_NilPassthrough(t *testing.T) {
	assert.NoError(t, Wrap(nil, "c", "m", "a"))
	assert.NoError(t, WrapInvalid(nil, "c", "m", "a"))
	assert.NoError(t, WrapFatal(nil, "c", "m", "a"))
}

func TestWrapInvalid_Classification(t *testing.T) {
	err := WrapInvalid(ErrInvalidMessageType, "Resolver", "Load", "identifier check")

	var ce *ClassifiedError
	require.True(t, As(err, &ce))
	assert.Equal(t, ErrorInvalid, ce.Class)
	assert.Equal(t, "Resolver", ce.Component)
	assert.Equal(t, "Load", ce.Operation)

	assert.True(t, IsInvalid(err))
	assert.False(t, IsFatal(err))
	assert.Equal(t, ErrorInvalid, Classify(err))
}

func TestWrapFatal_Classification(t *testing.T) {
	err := WrapFatal(ErrPackageNotFound, "Resolver", "Load", "package resolution")

	assert.True(t, IsFatal(err))
	assert.False(t, IsInvalid(err))
	assert.Equal(t, ErrorFatal, Classify(err))
	assert.True(t, Is(err, ErrPackageNotFound))
}

func TestClassify_BareSentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClass
	}{
		{"invalid data type", ErrInvalidDataType, ErrorInvalid},
		{"invalid message type", ErrInvalidMessageType, ErrorInvalid},
		{"signature mismatch", ErrSignatureMismatch, ErrorInvalid},
		{"package not found", ErrPackageNotFound, ErrorFatal},
		{"definition unreadable", ErrDefinitionUnreadable, ErrorFatal},
		{"immutable data type", ErrImmutableDataType, ErrorFatal},
		{"unclassified", fmt.Errorf("some other error"), ErrorTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(ErrUnknownDataType))
	assert.True(t, IsNotFound(Wrap(ErrPackageNotFound, "c", "m", "a")))
	assert.True(t, IsNotFound(ErrNoSuchMember))
	assert.False(t, IsNotFound(ErrInvalidMessageType))
	assert.False(t, IsNotFound(nil))
}

func TestErrorClass_String(t *testing.T) {
	assert.Equal(t, "invalid", ErrorInvalid.String())
	assert.Equal(t, "fatal", ErrorFatal.String())
	assert.Equal(t, "transient", ErrorTransient.String())
	assert.Equal(t, "unknown", ErrorClass(99).String())
}

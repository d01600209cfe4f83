package dataerrors

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrorTypeKeyNotFound, "label not found")

	assert.Equal(t, ErrorTypeKeyNotFound, err.Type)
	assert.Equal(t, "key_not_found: label not found", err.Error())
	assert.NotEmpty(t, err.Stack)
	assert.Nil(t, err.Unwrap())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrorTypeValidation, "expected %d values, got %d", 4, 3)
	assert.Equal(t, "validation: expected 4 values, got 3", err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, ErrorTypeFile, "ignored"))
	})

	t.Run("plain cause", func(t *testing.T) {
		err := Wrap(io.EOF, ErrorTypeFile, "read failed")
		require.NotNil(t, err)
		assert.True(t, errors.Is(err, io.EOF))
		assert.Equal(t, "file: read failed: EOF", err.Error())
	})

	t.Run("keeps inner stack", func(t *testing.T) {
		inner := New(ErrorTypeValidation, "ragged row")
		outer := Wrap(inner, ErrorTypeFile, "load failed")
		assert.Equal(t, inner.Stack, outer.Stack)
		assert.True(t, IsType(outer, ErrorTypeFile))
	})
}

func TestTypePredicates(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		validation   bool
		keyNotFound  bool
		typeMismatch bool
	}{
		{"validation", New(ErrorTypeValidation, "x"), true, false, false},
		{"key not found", New(ErrorTypeKeyNotFound, "x"), false, true, false},
		{"type mismatch", New(ErrorTypeTypeMismatch, "x"), false, false, true},
		{"plain error", errors.New("x"), false, false, false},
		{"nil", nil, false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.validation, IsValidation(tt.err))
			assert.Equal(t, tt.keyNotFound, IsKeyNotFound(tt.err))
			assert.Equal(t, tt.typeMismatch, IsTypeMismatch(tt.err))
		})
	}
}

func TestGetDetail(t *testing.T) {
	err := New(ErrorTypeKeyNotFound, "label not found").WithDetail("label", "wrong key")

	v, ok := GetDetail(err, "label")
	assert.True(t, ok)
	assert.Equal(t, "wrong key", v)

	_, ok = GetDetail(err, "position")
	assert.False(t, ok)

	_, ok = GetDetail(errors.New("plain"), "label")
	assert.False(t, ok)
}

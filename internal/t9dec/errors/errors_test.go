package errors

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shiroemons/go-t9decode/pkg/t9"
)

func TestInputError(t *testing.T) {
	tests := []struct {
		name     string
		err      *InputError
		expected string
	}{
		{
			name:     "パスあり",
			err:      NewInputError("open", "keys.txt", fs.ErrNotExist),
			expected: "open keys.txt: file does not exist",
		},
		{
			name:     "パスなし",
			err:      NewInputError("decode", "", ErrDecodeFailure),
			expected: "decode: 打鍵列の変換に失敗しました",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.Equal(t, tt.err.Err, errors.Unwrap(tt.err))
		})
	}
}

func TestLineError(t *testing.T) {
	_, decodeErr := t9.DecodeString("1")
	err := NewLineError(4, decodeErr)

	assert.Contains(t, err.Error(), "4行目")
	assert.ErrorIs(t, err, t9.ErrInvalidCharacter)

	var target *t9.DecodeError
	assert.ErrorAs(t, err, &target)
}

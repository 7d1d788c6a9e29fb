package app

import (
	"strings"

	"github.com/shiroemons/go-t9decode/internal/t9dec/models"
	"github.com/shiroemons/go-t9decode/pkg/t9"
)

// T9LineDecoder は pkg/t9 を使用して1行を変換します
type T9LineDecoder struct{}

// NewT9LineDecoder は新しいT9LineDecoderを作成します
func NewT9LineDecoder() *T9LineDecoder {
	return &T9LineDecoder{}
}

// DecodeLine は1行の打鍵列を変換します
func (d *T9LineDecoder) DecodeLine(number int, input string) (models.DecodedLine, error) {
	dec := t9.NewDecoder(strings.NewReader(input))
	text, err := dec.Decode()
	line := models.DecodedLine{
		Number: number,
		Input:  input,
		Text:   text,
		Stats:  dec.Stats(),
	}
	return line, err
}

package mocks

import (
	"github.com/shiroemons/go-t9decode/internal/t9dec/models"
)

// MockLineDecoder はテスト用の行デコーダーモック
type MockLineDecoder struct {
	Results map[string]string
	Errors  map[string]error
	Calls   []string
}

// NewMockLineDecoder は新しいMockLineDecoderを作成します
func NewMockLineDecoder() *MockLineDecoder {
	return &MockLineDecoder{
		Results: make(map[string]string),
		Errors:  make(map[string]error),
	}
}

// DecodeLine は登録された結果を返します
func (d *MockLineDecoder) DecodeLine(number int, input string) (models.DecodedLine, error) {
	d.Calls = append(d.Calls, input)
	line := models.DecodedLine{Number: number, Input: input}
	if err, ok := d.Errors[input]; ok {
		return line, err
	}
	line.Text = d.Results[input]
	return line, nil
}

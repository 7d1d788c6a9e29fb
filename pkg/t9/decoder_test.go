package t9

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"
)

func TestDecodeString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "空入力", input: "", expected: ""},
		{name: "間で同じキーを区切る", input: "44 444 44 444", expected: "hihi"},
		{name: "キーが変われば確定する", input: "227", expected: "bp"},
		{name: "末尾の打鍵も確定する", input: "44", expected: "h"},
		{name: "空白1つで区切る", input: "4 4", expected: "gg"},
		{name: "空白2つ", input: "4  4", expected: "gg"},
		{name: "空白3つ", input: "4   4", expected: "gg"},
		{name: "0は空白", input: "0", expected: " "},
		{name: "7の4回", input: "7777", expected: "s"},
		{name: "9の4回", input: "9999", expected: "z"},
		{name: "先頭と末尾の空白", input: "  2  ", expected: "a"},
		{name: "空白のみ", input: "   ", expected: ""},
		{name: "異なるキーの間の空白", input: "2 3", expected: "ad"},
		{name: "単語の区切り", input: "44 444 0 8 44 33 777 33", expected: "hi there"},
		{name: "hello world", input: "4433555 555666096667775553", expected: "hello world"},
		{name: "各キーの最後の文字", input: "222 333 444 555 666 7777 888 9999", expected: "cfilosvz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeString(tt.input)
			if err != nil {
				t.Fatalf("DecodeString(%q) error = %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("DecodeString(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDecodeString_Errors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantErr    error
		wantOffset int64
		wantChar   byte
		wantCount  int
	}{
		{name: "キー1", input: "1", wantErr: ErrInvalidCharacter, wantOffset: 0, wantChar: '1'},
		{name: "記号", input: "22#", wantErr: ErrInvalidCharacter, wantOffset: 2, wantChar: '#'},
		{name: "改行", input: "2\n", wantErr: ErrInvalidCharacter, wantOffset: 1, wantChar: '\n'},
		{name: "英字", input: "a", wantErr: ErrInvalidCharacter, wantOffset: 0, wantChar: 'a'},
		{name: "7の5回", input: "77777", wantErr: ErrInvalidRunLength, wantOffset: 0, wantChar: '7', wantCount: 5},
		{name: "2の4回", input: "3 2222", wantErr: ErrInvalidRunLength, wantOffset: 2, wantChar: '2', wantCount: 4},
		{name: "0の2回", input: "00", wantErr: ErrInvalidRunLength, wantOffset: 0, wantChar: '0', wantCount: 2},
		{name: "キー変更で確定した連打", input: "88883", wantErr: ErrInvalidRunLength, wantOffset: 0, wantChar: '8', wantCount: 4},
		{name: "空白で確定した連打", input: "5555 5", wantErr: ErrInvalidRunLength, wantOffset: 0, wantChar: '5', wantCount: 4},
		{name: "確定前の無効文字が優先", input: "77777#", wantErr: ErrInvalidCharacter, wantOffset: 5, wantChar: '#'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeString(tt.input)
			if err == nil {
				t.Fatalf("DecodeString(%q) = %q, want error", tt.input, got)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			var decErr *DecodeError
			if !errors.As(err, &decErr) {
				t.Fatalf("error type = %T, want *DecodeError", err)
			}
			if decErr.Offset != tt.wantOffset {
				t.Errorf("Offset = %d, want %d", decErr.Offset, tt.wantOffset)
			}
			if decErr.Char != tt.wantChar {
				t.Errorf("Char = %q, want %q", decErr.Char, tt.wantChar)
			}
			if decErr.Count != tt.wantCount {
				t.Errorf("Count = %d, want %d", decErr.Count, tt.wantCount)
			}
			if got != "" {
				t.Errorf("部分的な結果が返された: %q", got)
			}
		})
	}
}

func TestDecode_ReadError(t *testing.T) {
	readErr := errors.New("read failed")
	_, err := Decode(iotest.ErrReader(readErr))
	if !errors.Is(err, readErr) {
		t.Errorf("error = %v, want %v", err, readErr)
	}
}

func TestDecode_OneByteReader(t *testing.T) {
	// 1バイトずつしか返さない入力でも結果は変わらない
	got, err := Decode(iotest.OneByteReader(strings.NewReader("44 444 44 444")))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got != "hihi" {
		t.Errorf("Decode() = %q, want %q", got, "hihi")
	}
}

func TestDecode_DataErrReader(t *testing.T) {
	// 最後のデータと一緒に io.EOF を返す入力
	got, err := Decode(iotest.DataErrReader(strings.NewReader("999")))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got != "y" {
		t.Errorf("Decode() = %q, want %q", got, "y")
	}
}

func TestDecode_Deterministic(t *testing.T) {
	input := "7777 33 66 3 0 44 33 555 7"
	first, err := DecodeString(input)
	if err != nil {
		t.Fatalf("DecodeString() error = %v", err)
	}
	for i := 0; i < 10; i++ {
		got, err := DecodeString(input)
		if err != nil {
			t.Fatalf("DecodeString() error = %v", err)
		}
		if got != first {
			t.Errorf("%d回目の結果が異なる: %q, want %q", i, got, first)
		}
	}
}

func TestDecoder_Stats(t *testing.T) {
	dec := NewDecoder(strings.NewReader(" 44 444  0"))
	got, err := dec.Decode()
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got != "hi " {
		t.Errorf("Decode() = %q, want %q", got, "hi ")
	}

	want := Stats{Presses: 6, Pauses: 2, Runs: 3}
	if dec.Stats() != want {
		t.Errorf("Stats() = %+v, want %+v", dec.Stats(), want)
	}
}

func TestDecoder_LongRun(t *testing.T) {
	// 長い連打でも連打列の文字列を作らずにエラーになる
	_, err := Decode(strings.NewReader(strings.Repeat("2", 1<<20)))
	if !errors.Is(err, ErrInvalidRunLength) {
		t.Errorf("error = %v, want %v", err, ErrInvalidRunLength)
	}
}

func TestDecodeError_Error(t *testing.T) {
	charErr := &DecodeError{Offset: 3, Char: '#', Err: ErrInvalidCharacter}
	if msg := charErr.Error(); !strings.Contains(msg, "offset 3") || !strings.Contains(msg, "'#'") {
		t.Errorf("Error() = %q", msg)
	}

	runErr := &DecodeError{Offset: 0, Char: '7', Count: 5, Err: ErrInvalidRunLength}
	if msg := runErr.Error(); !strings.Contains(msg, "5 回") {
		t.Errorf("Error() = %q", msg)
	}
}

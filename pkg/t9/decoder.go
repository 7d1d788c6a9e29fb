package t9

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type state int

const (
	stateIdle         state = iota // 確定待ちの打鍵なし
	stateAccumulating              // 同じキーの打鍵を数えている
)

// Stats は1回の変換で処理した打鍵の集計です
type Stats struct {
	Presses int // 数字キーの打鍵数
	Pauses  int // 出力に影響しなかった空白の数
	Runs    int // 確定した文字数
}

// Decoder は打鍵列を読み込んで平文に変換します。
// 1つの Decoder は1つの入力に対して1回だけ使用します。
// 状態は1回の Decode 呼び出しの中だけで使われるため、Decoder を共有しない限り
// 複数の goroutine から同時に変換できます。
type Decoder struct {
	r *bufio.Reader

	state    state
	digit    byte
	count    int
	runStart int64
	offset   int64

	out   strings.Builder
	stats Stats
}

// NewDecoder は r から読み込む新しい Decoder を作成します
func NewDecoder(r io.Reader) *Decoder {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &Decoder{r: br}
}

// Decode は入力を最後まで読み込み、変換した文字列を返します。
// 無効な文字や連打数を検出した時点で *DecodeError を返します。
func (d *Decoder) Decode() (string, error) {
	for {
		c, err := d.r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", fmt.Errorf("t9: 入力の読み込みに失敗しました: %w", err)
		}
		if err := d.step(c); err != nil {
			return "", err
		}
		d.offset++
	}

	// 末尾の打鍵は空白がなくても確定する
	if d.state == stateAccumulating {
		if err := d.commit(); err != nil {
			return "", err
		}
	}
	return d.out.String(), nil
}

// Stats は直前の Decode で処理した打鍵の集計を返します
func (d *Decoder) Stats() Stats {
	return d.stats
}

func (d *Decoder) step(c byte) error {
	switch {
	case c == ' ':
		if d.state == stateIdle {
			d.stats.Pauses++
			return nil
		}
		return d.commit()

	case isKey(c):
		d.stats.Presses++
		if d.state == stateAccumulating && c == d.digit {
			d.count++
			return nil
		}
		if d.state == stateAccumulating {
			if err := d.commit(); err != nil {
				return err
			}
		}
		d.state = stateAccumulating
		d.digit = c
		d.count = 1
		d.runStart = d.offset
		return nil

	default:
		return &DecodeError{Offset: d.offset, Char: c, Err: ErrInvalidCharacter}
	}
}

// commit は数えている打鍵を1文字に変換して出力に追加し、Idle に戻ります
func (d *Decoder) commit() error {
	if d.count > maxRunLength {
		return d.runLengthError()
	}
	c, ok := Lookup(strings.Repeat(string(d.digit), d.count))
	if !ok {
		return d.runLengthError()
	}
	d.out.WriteByte(c)
	d.stats.Runs++
	d.state = stateIdle
	d.count = 0
	return nil
}

func (d *Decoder) runLengthError() error {
	return &DecodeError{Offset: d.runStart, Char: d.digit, Count: d.count, Err: ErrInvalidRunLength}
}

// Decode は r の打鍵列を平文に変換します
func Decode(r io.Reader) (string, error) {
	return NewDecoder(r).Decode()
}

// DecodeString は文字列の打鍵列を平文に変換します
func DecodeString(s string) (string, error) {
	return Decode(strings.NewReader(s))
}

// Package fileutil はファイル操作のユーティリティ関数を提供します
package fileutil

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	xencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// SniffSize は内容の判定に使用する先頭のバイト数です
const SniffSize = 3072

// StdStream は標準入出力を表すパスです
const StdStream = "-"

// SniffText は br の先頭を読み進めずに判定し、テキストであればMIMEタイプを返します。
// br のバッファサイズは SniffSize 以上である必要があります。
// 空の入力はテキストとして扱います。
func SniffText(br *bufio.Reader) (string, error) {
	head, err := br.Peek(SniffSize)
	if err != nil && err != io.EOF {
		return "", err
	}
	if len(head) == 0 {
		return "text/plain", nil
	}

	detected := mimetype.Detect(head)
	for m := detected; m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return detected.String(), nil
		}
	}
	return detected.String(), fmt.Errorf("%w: %s", ErrNotText, detected.String())
}

// NewInputReader はBOMを取り除き、UTF-16の入力をUTF-8に変換するReaderを返します。
// BOMがない場合は入力をそのまま返します。
func NewInputReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(transform.Nop))
}

// NewOutputWriter は encoding で指定された文字コードで w に書き込むWriterと、
// 正規化した文字コード名を返します。
// Close は残りのデータを書き込みますが、w は閉じません。
func NewOutputWriter(w io.Writer, encoding string, bom bool) (io.WriteCloser, string, error) {
	enc, name, err := lookupEncoding(encoding)
	if err != nil {
		return nil, "", err
	}

	tw := transform.NewWriter(w, enc.NewEncoder())
	if bom {
		// U+FEFF を出力先の文字コードで書き込む
		if _, err := io.WriteString(tw, "\uFEFF"); err != nil {
			return nil, "", fmt.Errorf("%w: %s: %w", ErrWriteBOM, name, err)
		}
	}
	return tw, name, nil
}

// EncodingName は文字コード名を正規化した名前を返します
func EncodingName(encoding string) (string, error) {
	_, name, err := lookupEncoding(encoding)
	return name, err
}

func lookupEncoding(encoding string) (xencoding.Encoding, string, error) {
	enc, err := htmlindex.Get(encoding)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrUnknownEncoding, encoding)
	}
	name, err := htmlindex.Name(enc)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", ErrUnknownEncoding, encoding, err)
	}
	return enc, name, nil
}

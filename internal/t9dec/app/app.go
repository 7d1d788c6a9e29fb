// Package app はアプリケーションのメインロジックを実装します
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shiroemons/go-t9decode/internal/t9dec/config"
	apperrors "github.com/shiroemons/go-t9decode/internal/t9dec/errors"
	"github.com/shiroemons/go-t9decode/internal/t9dec/fileutil"
	"github.com/shiroemons/go-t9decode/internal/t9dec/interfaces"
	"github.com/shiroemons/go-t9decode/internal/t9dec/metrics"
	"github.com/shiroemons/go-t9decode/internal/t9dec/models"
)

// App はアプリケーションのメインロジックを管理します
type App struct {
	config   *config.Config
	logger   *logrus.Logger
	fs       interfaces.FileSystem
	decoder  interfaces.LineDecoder
	recorder *metrics.Recorder
	stdin    io.Reader
	stdout   io.Writer
	summary  models.Summary
}

// Options はAppの設定オプション
type Options struct {
	FileSystem interfaces.FileSystem
	Decoder    interfaces.LineDecoder
	Logger     *logrus.Logger
	Stdin      io.Reader
	Stdout     io.Writer
}

// New は新しいAppを作成します
func New(cfg *config.Config) *App {
	return NewWithOptions(cfg, Options{})
}

// NewWithOptions は新しいAppをオプション付きで作成します
func NewWithOptions(cfg *config.Config, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = config.NewLogger(cfg)
	}

	// デフォルトのファイルシステムを設定
	fs := opts.FileSystem
	if fs == nil {
		fs = fileutil.NewOSFileSystem()
	}

	var decoder interfaces.LineDecoder
	if opts.Decoder != nil {
		decoder = opts.Decoder
	} else {
		decoder = NewT9LineDecoder()
	}

	stdin := opts.Stdin
	if stdin == nil {
		stdin = os.Stdin
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	return &App{
		config:   cfg,
		logger:   logger,
		fs:       fs,
		decoder:  decoder,
		recorder: metrics.NewRecorder(),
		stdin:    stdin,
		stdout:   stdout,
	}
}

// Summary は直前の Run の集計を返します
func (a *App) Summary() models.Summary {
	return a.summary
}

// Run はアプリケーションを実行します
func (a *App) Run(ctx context.Context) error {
	log := a.logger.WithField("run_id", uuid.NewString())

	err := a.run(ctx, log)

	// 失敗した場合もそれまでの集計を書き出す
	if a.config.MetricsFile != "" {
		if merr := a.recorder.WriteTextfile(a.config.MetricsFile); merr != nil {
			if err == nil {
				return merr
			}
			log.WithError(merr).Warn("メトリクスを書き込めませんでした")
		} else {
			log.WithField("path", a.config.MetricsFile).Debug("メトリクスを書き込みました")
		}
	}
	return err
}

func (a *App) run(ctx context.Context, log *logrus.Entry) error {
	in, closeIn, err := a.openInput()
	if err != nil {
		return err
	}
	defer closeIn()

	// ファイル入力は内容を判定してから出力を作成する。
	// 標準入力は行ごとに出力できるよう先読みしない。
	var src io.Reader = in
	if a.config.InputPath != fileutil.StdStream {
		br := bufio.NewReaderSize(in, fileutil.SniffSize)
		mime, err := fileutil.SniffText(br)
		if err != nil {
			return apperrors.NewInputError("sniff", a.config.InputPath, err)
		}
		log.WithField("mime", mime).Debug("入力の形式を判定しました")
		src = br
	}
	log.WithField("input", a.config.InputPath).Debug("入力を開きました")

	out, closeOut, err := a.openOutput()
	if err != nil {
		return err
	}
	defer closeOut()

	w, encoding, err := fileutil.NewOutputWriter(out, a.config.Encoding, a.config.WriteBOM)
	if err != nil {
		return apperrors.NewInputError("encode", a.config.OutputPath, err)
	}
	log.WithFields(logrus.Fields{
		"output":   a.config.OutputPath,
		"encoding": encoding,
		"bom":      a.config.WriteBOM,
	}).Debug("出力を開きました")

	decodeErr := a.decodeLines(ctx, log, fileutil.NewInputReader(src), w)

	// 変換に失敗した場合も書き込み済みの行は出力する
	if err := w.Close(); err != nil && decodeErr == nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	log.WithFields(logrus.Fields{
		"lines":   a.summary.Lines,
		"decoded": a.summary.Decoded,
		"failed":  a.summary.Failed,
	}).Info("変換が完了しました")

	return decodeErr
}

// decodeLines は入力を1行ずつ変換して書き込みます
func (a *App) decodeLines(ctx context.Context, log *logrus.Entry, r io.Reader, w io.Writer) error {
	a.summary = models.Summary{}
	var firstErr error

	br := bufio.NewReader(r)
	for number := 1; ; number++ {
		// コンテキストのキャンセルチェック
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		raw, readErr := br.ReadString('\n')
		if readErr != nil && readErr != io.EOF {
			return fmt.Errorf("%w: %w", ErrReadInput, readErr)
		}
		if readErr == io.EOF && raw == "" {
			break
		}

		input := strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
		a.summary.Lines++

		line, err := a.decoder.DecodeLine(number, input)
		a.recorder.Observe(line.Stats, utf8.RuneCountInString(line.Text), err)
		if err != nil {
			a.summary.Failed++
			lineErr := apperrors.NewLineError(number, err)
			if !a.config.KeepGoing {
				return fmt.Errorf("%w: %w", apperrors.ErrDecodeFailure, lineErr)
			}
			log.WithError(lineErr).WithField("line", number).Warn("変換できない行を空行として出力しました")
			if firstErr == nil {
				firstErr = lineErr
			}
			// 入力と出力の行番号を揃える
			line.Text = ""
		} else {
			a.summary.Decoded++
			log.WithFields(logrus.Fields{
				"line":    number,
				"presses": line.Stats.Presses,
				"pauses":  line.Stats.Pauses,
				"runs":    line.Stats.Runs,
			}).Debug("行を変換しました")
		}

		if _, err := io.WriteString(w, line.Text+"\n"); err != nil {
			return fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}

		if readErr == io.EOF {
			break
		}
	}

	if firstErr != nil {
		return fmt.Errorf("%w: %d行中%d行: %w", apperrors.ErrDecodeFailure, a.summary.Lines, a.summary.Failed, firstErr)
	}
	return nil
}

// openInput は入力を開きます。"-" の場合は標準入力を使用します。
func (a *App) openInput() (io.Reader, func(), error) {
	if a.config.InputPath == fileutil.StdStream {
		return a.stdin, func() {}, nil
	}
	if !a.fs.FileExists(a.config.InputPath) {
		return nil, nil, fmt.Errorf("%w: %w", ErrInputNotFound, apperrors.NewInputError("open", a.config.InputPath, fs.ErrNotExist))
	}
	info, err := a.fs.Stat(a.config.InputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrOpenInput, apperrors.NewInputError("stat", a.config.InputPath, err))
	}
	if info.IsDir() {
		return nil, nil, fmt.Errorf("%w: %w", ErrInputIsDirectory, apperrors.NewInputError("open", a.config.InputPath, fs.ErrInvalid))
	}

	f, err := a.fs.Open(a.config.InputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrOpenInput, apperrors.NewInputError("open", a.config.InputPath, err))
	}
	return f, func() { f.Close() }, nil
}

// openOutput は出力を開きます。"-" の場合は標準出力を使用します。
func (a *App) openOutput() (io.Writer, func(), error) {
	if a.config.OutputPath == fileutil.StdStream {
		return a.stdout, func() {}, nil
	}
	f, err := a.fs.Create(a.config.OutputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrCreateOutput, apperrors.NewInputError("create", a.config.OutputPath, err))
	}
	return f, func() {
		if err := f.Close(); err != nil {
			a.logger.WithError(err).Warn("出力ファイルを閉じられませんでした")
		}
	}, nil
}

// Package config はt9decコマンドの設定管理を行います
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/shiroemons/go-t9decode/internal/t9dec/fileutil"
)

const Version = "0.1.0"

// DefaultEnvFile は --env-file が指定されていない場合に読み込む環境変数ファイルです
const DefaultEnvFile = ".env"

// 環境変数名
const (
	EnvInput       = "T9DEC_INPUT"
	EnvOutput      = "T9DEC_OUTPUT"
	EnvEncoding    = "T9DEC_ENCODING"
	EnvBOM         = "T9DEC_BOM"
	EnvDebug       = "T9DEC_DEBUG"
	EnvLogFormat   = "T9DEC_LOG_FORMAT"
	EnvMetricsFile = "T9DEC_METRICS_FILE"
	EnvKeepGoing   = "T9DEC_KEEP_GOING"
)

// ログ形式
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Config はアプリケーションの設定を保持します
type Config struct {
	InputPath   string
	OutputPath  string
	Encoding    string
	WriteBOM    bool
	DebugMode   bool
	LogFormat   string
	MetricsFile string
	KeepGoing   bool
	EnvFile     string
	ShowVersion bool
}

// ParseFlags はコマンドライン引数を解析して設定を返します。
// フラグの既定値は環境変数 (.env ファイルを含む) から取得します。
func ParseFlags() (*Config, error) {
	envFile, explicit := findEnvFile(os.Args[1:])
	if err := LoadEnvFile(envFile, explicit); err != nil {
		return nil, err
	}

	config := &Config{EnvFile: envFile}

	// カスタムUsage関数を設定（ダブルハイフン表示）
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage of %s:\n", os.Args[0])
		fmt.Fprintln(flag.CommandLine.Output(), "  --input string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tkey press file to decode, \"-\" for stdin (default \"-\")")
		fmt.Fprintln(flag.CommandLine.Output(), "  -i string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tkey press file to decode (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --output string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \toutput file, \"-\" for stdout (default \"-\")")
		fmt.Fprintln(flag.CommandLine.Output(), "  -o string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \toutput file (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --encoding string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \toutput text encoding, e.g. utf-8, utf-16le, shift_jis (default \"utf-8\")")
		fmt.Fprintln(flag.CommandLine.Output(), "  -e string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \toutput text encoding (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --bom")
		fmt.Fprintln(flag.CommandLine.Output(), "    \twrite a byte order mark in the output encoding")
		fmt.Fprintln(flag.CommandLine.Output(), "  --keep-going")
		fmt.Fprintln(flag.CommandLine.Output(), "    \twrite an empty line for lines that fail to decode instead of stopping")
		fmt.Fprintln(flag.CommandLine.Output(), "  -k\twrite an empty line for lines that fail to decode (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --metrics-file string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \twrite decode statistics in Prometheus text format")
		fmt.Fprintln(flag.CommandLine.Output(), "  --log-format string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tlog format, text or json (default \"text\")")
		fmt.Fprintln(flag.CommandLine.Output(), "  --env-file string")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tfile to load T9DEC_* variables from (default \".env\")")
		fmt.Fprintln(flag.CommandLine.Output(), "  --debug")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tenable debug output")
		fmt.Fprintln(flag.CommandLine.Output(), "  -d\tenable debug output (shorthand)")
		fmt.Fprintln(flag.CommandLine.Output(), "  --version")
		fmt.Fprintln(flag.CommandLine.Output(), "    \tshow version information")
		fmt.Fprintln(flag.CommandLine.Output(), "  -v\tshow version information (shorthand)")
	}

	// 入力
	input := envString(EnvInput, "-")
	flag.StringVar(&config.InputPath, "input", input, "key press file to decode, \"-\" for stdin")
	flag.StringVar(&config.InputPath, "i", input, "key press file to decode (shorthand)")

	// 出力
	output := envString(EnvOutput, "-")
	flag.StringVar(&config.OutputPath, "output", output, "output file, \"-\" for stdout")
	flag.StringVar(&config.OutputPath, "o", output, "output file (shorthand)")

	// 出力の文字コード
	encoding := envString(EnvEncoding, "utf-8")
	flag.StringVar(&config.Encoding, "encoding", encoding, "output text encoding")
	flag.StringVar(&config.Encoding, "e", encoding, "output text encoding (shorthand)")
	flag.BoolVar(&config.WriteBOM, "bom", envBool(EnvBOM), "write a byte order mark in the output encoding")

	// エラー行をスキップ
	keepGoing := envBool(EnvKeepGoing)
	flag.BoolVar(&config.KeepGoing, "keep-going", keepGoing, "write an empty line for lines that fail to decode instead of stopping")
	flag.BoolVar(&config.KeepGoing, "k", keepGoing, "write an empty line for lines that fail to decode (shorthand)")

	flag.StringVar(&config.MetricsFile, "metrics-file", envString(EnvMetricsFile, ""), "write decode statistics in Prometheus text format")
	flag.StringVar(&config.LogFormat, "log-format", envString(EnvLogFormat, LogFormatText), "log format, text or json")
	flag.StringVar(&config.EnvFile, "env-file", envFile, "file to load T9DEC_* variables from")

	// デバッグモード
	debug := envBool(EnvDebug)
	flag.BoolVar(&config.DebugMode, "debug", debug, "enable debug output")
	flag.BoolVar(&config.DebugMode, "d", debug, "enable debug output (shorthand)")

	// バージョン表示
	flag.BoolVar(&config.ShowVersion, "version", false, "show version information")
	flag.BoolVar(&config.ShowVersion, "v", false, "show version information (shorthand)")

	flag.Parse()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate は設定値を検証します
func (c *Config) Validate() error {
	switch c.LogFormat {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.LogFormat)
	}
	if c.InputPath == "" {
		return ErrEmptyInputPath
	}
	if c.OutputPath == "" {
		return ErrEmptyOutputPath
	}
	if _, err := fileutil.EncodingName(c.Encoding); err != nil {
		return err
	}
	return nil
}

// LoadEnvFile は環境変数ファイルを読み込みます。
// 既に設定されている環境変数は上書きしません。
// explicit が false の場合、ファイルが存在しなくてもエラーにしません。
func LoadEnvFile(path string, explicit bool) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: %s: %w", ErrLoadEnvFile, path, err)
	}
	return nil
}

// findEnvFile は flag.Parse より前に --env-file の値を取り出します
func findEnvFile(args []string) (string, bool) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		for _, name := range []string{"-env-file", "--env-file"} {
			if arg == name && i+1 < len(args) {
				return args[i+1], true
			}
			if len(arg) > len(name)+1 && arg[:len(name)+1] == name+"=" {
				return arg[len(name)+1:], true
			}
		}
	}
	return DefaultEnvFile, false
}

func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	return err == nil && v
}

// HandleVersion はバージョン表示を処理します
func HandleVersion(showVersion bool) {
	if showVersion {
		fmt.Printf("t9dec version %s\n", Version)
		os.Exit(0)
	}
}

// NewLogger は設定に従ってロガーを作成します。
// ログは標準エラー出力に書き込みます (標準出力は変換結果に使用するため)。
func NewLogger(cfg *Config) *logrus.Logger {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg *Config, w io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)

	if cfg.LogFormat == LogFormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	}

	if cfg.DebugMode {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
	return logger
}

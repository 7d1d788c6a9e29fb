// Package metrics は変換結果の集計をPrometheus形式で出力します
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/shiroemons/go-t9decode/pkg/t9"
)

// 行の変換結果ラベル
const (
	ResultDecoded = "decoded"
	ResultFailed  = "failed"
)

// Recorder は変換結果をメトリクスとして集計します
type Recorder struct {
	registry *prometheus.Registry

	lines   *prometheus.CounterVec
	presses prometheus.Counter
	pauses  prometheus.Counter
	runs    prometheus.Counter
	chars   prometheus.Counter
}

// NewRecorder は専用のレジストリを持つ新しいRecorderを作成します
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		lines: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "t9dec_lines_total",
			Help: "Number of input lines processed, by result",
		}, []string{"result"}),
		presses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "t9dec_key_presses_total",
			Help: "Number of digit key presses read from decoded lines",
		}),
		pauses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "t9dec_pauses_total",
			Help: "Number of pause characters that did not affect the output",
		}),
		runs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "t9dec_runs_total",
			Help: "Number of key runs committed to output characters",
		}),
		chars: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "t9dec_decoded_chars_total",
			Help: "Number of characters written to the output",
		}),
	}

	r.registry.MustRegister(r.lines, r.presses, r.pauses, r.runs, r.chars)

	// 失敗が0件でも系列を出力する
	r.lines.WithLabelValues(ResultDecoded)
	r.lines.WithLabelValues(ResultFailed)
	return r
}

// Observe は1行分の変換結果を集計します。
// chars は出力した文字数です。失敗した行は打鍵数などを集計しません。
func (r *Recorder) Observe(stats t9.Stats, chars int, err error) {
	if err != nil {
		r.lines.WithLabelValues(ResultFailed).Inc()
		return
	}
	r.lines.WithLabelValues(ResultDecoded).Inc()
	r.presses.Add(float64(stats.Presses))
	r.pauses.Add(float64(stats.Pauses))
	r.runs.Add(float64(stats.Runs))
	r.chars.Add(float64(chars))
}

// Registry は集計に使用しているレジストリを返します
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile は集計結果をテキスト形式でファイルに書き込みます。
// node_exporter の textfile collector で読み込める形式です。
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteMetrics, err)
	}
	return nil
}

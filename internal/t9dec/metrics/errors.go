package metrics

import "errors"

// ErrWriteMetrics はメトリクスファイルの書き込みに失敗した場合のエラー
var ErrWriteMetrics = errors.New("メトリクスファイルの書き込みに失敗しました")

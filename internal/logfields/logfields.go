package logfields

import "log/slog"

// Canonical log field names shared by the pipelines.
const (
	KeyRunID      = "run_id"
	KeyPipeline   = "pipeline"
	KeyStage      = "stage"
	KeyPage       = "page"
	KeyTitle      = "title"
	KeyPath       = "path"
	KeyCount      = "count"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

func RunID(id string) slog.Attr { return slog.String(KeyRunID, id) }
func Pipeline(name string) slog.Attr { return slog.String(KeyPipeline, name) }
func Stage(name string) slog.Attr { return slog.String(KeyStage, name) }
func Page(name string) slog.Attr { return slog.String(KeyPage, name) }
func Title(t string) slog.Attr { return slog.String(KeyTitle, t) }
func Path(p string) slog.Attr { return slog.String(KeyPath, p) }
func Count(n int) slog.Attr { return slog.Int(KeyCount, n) }
func DurationMS(ms int64) slog.Attr { return slog.Int64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}

package audioscore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/haivivi/soundscore/pkg/storage"
)

// Result file names.
const (
	SummaryFile    = "scores_data.json"
	ClassesFile    = "scores_classes.json"
	HighlightsFile = "highlights.json"
)

// ChunkFile names the score file of chunk i.
func ChunkFile(i int) string {
	return fmt.Sprintf("scores_data_chunk_%d.json", i)
}

const prettyIndent = "    "

// Writer serializes result records into a FileStore. Existing files are
// overwritten.
type Writer struct {
	store   storage.FileStore
	metrics *Metrics
	log     *slog.Logger
	files   []string
}

// NewWriter creates a Writer. A nil metrics or logger disables that output.
func NewWriter(store storage.FileStore, m *Metrics, log *slog.Logger) *Writer {
	if m == nil {
		m = NewMetrics()
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Writer{store: store, metrics: m, log: log}
}

// Files lists the names written so far, in order.
func (w *Writer) Files() []string {
	return append([]string(nil), w.files...)
}

// WriteSummary writes scores_data.json, pretty-printed.
func (w *Writer) WriteSummary(ctx context.Context, s ScoreSummary) error {
	return w.write(ctx, SummaryFile, s, true)
}

// WriteClassNames writes the full label list to scores_classes.json,
// pretty-printed.
func (w *Writer) WriteClassNames(ctx context.Context, names []string) error {
	return w.write(ctx, ClassesFile, names, true)
}

// WriteHighlights writes highlights.json, pretty-printed.
func (w *Writer) WriteHighlights(ctx context.Context, h Highlights) error {
	return w.write(ctx, HighlightsFile, h, true)
}

// WriteChunk writes one chunk's raw scores, compact.
func (w *Writer) WriteChunk(ctx context.Context, index int, scores ScoreMatrix) error {
	return w.write(ctx, ChunkFile(index), ChunkScores{Scores: scores}, false)
}

func (w *Writer) write(ctx context.Context, name string, v any, pretty bool) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", prettyIndent)
	}
	if err := enc.Encode(v); err != nil {
		return SerializationError.Wrap(err, "encode %s", name)
	}
	// Encode terminates with a newline; the files carry the bare document.
	data := bytes.TrimSuffix(buf.Bytes(), []byte("\n"))

	f, err := w.store.Write(ctx, name)
	if err != nil {
		return SerializationError.Wrap(err, "create %s", name)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return SerializationError.Wrap(err, "write %s", name)
	}
	if err := f.Close(); err != nil {
		return SerializationError.Wrap(err, "close %s", name)
	}

	w.files = append(w.files, name)
	w.metrics.FilesWritten.Inc()
	w.metrics.BytesWritten.Add(float64(len(data)))
	w.log.Debug("wrote result file", "file", name, "bytes", len(data))
	return nil
}

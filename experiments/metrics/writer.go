package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/parquet-go/parquet-go"
	"github.com/parquet-go/parquet-go/compress/zstd"
)

// Format selects the on-disk encoding of experiment records.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatParquet:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q: want csv or parquet", s)
	}
}

type Writer struct {
	baseDir string
	format  Format
}

// NewWriter creates dir/name/<timestamp> and writes every record file there.
func NewWriter(dir, name string, format Format) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, name, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
		format:  format,
	}, nil
}

// Dir is the directory the writer stores files in.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	return writeRecords(w, "agent_configs", agentConfigHeader, configs)
}

func (w *Writer) WriteComparisonRecords(records []ComparisonRecord) error {
	return writeRecords(w, "comparison_records", comparisonHeader, records)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	return writeRecords(w, "game_records", gameHeader, records)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	return writeRecords(w, "move_records", moveHeader, records)
}

type record interface {
	csvRow() []string
}

func writeRecords[T record](w *Writer, name string, header []string, records []T) error {
	if w.format == FormatParquet {
		return writeParquet(filepath.Join(w.baseDir, name+".parquet"), name, records)
	}
	return writeCSV(filepath.Join(w.baseDir, name+".csv"), header, records)
}

func writeCSV[T record](path string, header []string, records []T) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", filepath.Base(path), err)
	}

	for _, r := range records {
		err = writer.Write(r.csvRow())
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", filepath.Base(path), err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// writeParquet writes to a temp file and renames it so readers never see a
// partial file.
func writeParquet[T any](path, schema string, records []T) error {
	tmpPath := path + ".tmp"
	_ = os.Remove(tmpPath)

	if err := parquet.WriteFile(tmpPath, records,
		parquet.Compression(&zstd.Codec{Level: zstd.SpeedBetterCompression}),
		parquet.KeyValueMetadata("schema", schema+"_v1"),
	); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write parquet: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename parquet: %w", err)
	}
	return nil
}

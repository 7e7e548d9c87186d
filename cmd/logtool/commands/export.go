package commands

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dailylog/dailylog/pkg/jsonlog"
)

// RunExport exports the log file to the specified format. An empty output
// writes to stdout.
func RunExport(path, format, output string, stdout io.Writer) error {
	reader, err := jsonlog.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	// Determine output writer
	w := stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	return Export(reader, format, w)
}

// Export writes every record of reader to w in format.
func Export(reader *jsonlog.Reader, format string, w io.Writer) error {
	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	case "cbor":
		return exportCBOR(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv, cbor)", format)
	}
}

func exportJSONL(reader *jsonlog.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	return each(reader, func(record jsonlog.Record) error {
		if err := encoder.Encode(record); err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
		return nil
	})
}

func exportCBOR(reader *jsonlog.Reader, w io.Writer) error {
	encoder := jsonlog.NewEncoder(w)
	return each(reader, func(record jsonlog.Record) error {
		if err := encoder.Encode(record); err != nil {
			return fmt.Errorf("failed to encode record: %w", err)
		}
		return nil
	})
}

func exportCSV(reader *jsonlog.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	// Write header
	header := []string{"time", "source", "level", "message", "error", "args"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	err := each(reader, func(record jsonlog.Record) error {
		row := []string{
			record.Time,
			record.Source,
			record.Level,
			record.Message,
			record.Error,
			strings.Join(argPairs(record.Args), ";"),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

func argPairs(args map[string]any) []string {
	keys := sortedKeys(args)
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = fmt.Sprintf("%s=%v", k, args[k])
	}
	return pairs
}

// each calls fn for every remaining record of reader.
func each(reader *jsonlog.Reader, fn func(jsonlog.Record) error) error {
	for {
		record, err := reader.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read record: %w", err)
		}
		if err := fn(record); err != nil {
			return err
		}
	}
}

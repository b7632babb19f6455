package launcher

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// lineEnding is what cmd.exe expects.
const lineEnding = "\r\n"

// Writer puts scripts on disk and reports each file on a progress stream.
type Writer struct {
	progress io.Writer
	logger   *slog.Logger
}

// NewWriter returns a Writer printing "Writing <path>" lines to progress.
func NewWriter(progress io.Writer, logger *slog.Logger) *Writer {
	return &Writer{progress: progress, logger: logger}
}

// Write creates the script's parent directories and overwrites the file.
func (w *Writer) Write(s Script) error {
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return fmt.Errorf("failed to create launcher directory: %w", err)
	}

	var b strings.Builder
	for _, line := range s.Lines {
		b.WriteString(line)
		b.WriteString(lineEnding)
	}

	fmt.Fprintf(w.progress, "Writing %s\n", s.Path)
	if err := os.WriteFile(s.Path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write launcher: %w", err)
	}
	w.logger.Debug("Wrote launcher", "path", s.Path, "lines", len(s.Lines))
	return nil
}

// WriteAll writes scripts in order, stopping at the first failure.
func (w *Writer) WriteAll(scripts []Script) error {
	for _, s := range scripts {
		if err := w.Write(s); err != nil {
			return err
		}
	}
	return nil
}

// ReadScript reads a written script back into lines.
func ReadScript(path string) (Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to open launcher: %w", err)
	}
	defer func() {
		_ = f.Close() // read-only
	}()

	s := Script{Path: path}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		s.Lines = append(s.Lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return Script{}, fmt.Errorf("failed to read launcher: %w", err)
	}
	return s, nil
}

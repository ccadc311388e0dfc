package record

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Write emits one tab-separated line per record, "qid confidence en1 en2 ...",
// grouped by query in ascending query id order.
func Write(w io.Writer, results Results) error {
	bw := bufio.NewWriter(w)
	for _, qid := range results.QueryIDs() {
		for _, rec := range results[qid] {
			fields := make([]string, 0, len(rec.Entities)+2)
			fields = append(fields, qid, rec.Confidence)
			fields = append(fields, rec.Entities...)
			if _, err := bw.WriteString(strings.Join(fields, "\t") + "\n"); err != nil {
				return fmt.Errorf("write record for %s: %w", qid, err)
			}
		}
	}
	return bw.Flush()
}

func WriteFile(path string, results Results) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := Write(f, results); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

// OutputPath derives the output file name from the annotation file:
// "runs/dev.tsv" with threshold 20 becomes "runs/dev-GIF-th20.0.txt".
func OutputPath(input string, threshold float64) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "-GIF-th" + FormatThreshold(threshold) + ".txt"
}

// FormatThreshold prints the shortest decimal form of v, keeping a ".0" suffix on
// integral values.
func FormatThreshold(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsNaN(v):
		return "nan"
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

package record

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/elq-eval/internal/eval/metrics"
	"github.com/DjordjeVuckovic/elq-eval/pkg/stringsutil"
)

// Interpretations holds the entity sets of each query as read from a qrel or
// result file.
type Interpretations map[string][]metrics.EntitySet

// Parse reads the tab-separated "qid confidence en1 en2 ..." format. A line
// carrying only a query id (and optionally a confidence) registers the query
// without interpretations.
func Parse(r io.Reader) (Interpretations, error) {
	out := make(Interpretations)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cols := strings.Split(line, "\t")
		qid := cols[0]
		if _, ok := out[qid]; !ok {
			out[qid] = nil
		}
		if len(cols) < 3 {
			continue
		}

		if entities := stringsutil.TrimEmpty(cols[2:]); len(entities) > 0 {
			out[qid] = append(out[qid], metrics.NewEntitySet(entities...))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan interpretations: %w", err)
	}
	return out, nil
}

func ParseFile(path string) (Interpretations, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	out, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return out, nil
}

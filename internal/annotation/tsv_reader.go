package annotation

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/elq-eval/internal/apperr"
	"golang.org/x/text/unicode/norm"
)

const (
	ColumnQID     = "qid"
	ColumnEntity  = "freebase_id"
	ColumnMention = "mention"
	ColumnScore   = "score"
)

var requiredColumns = []string{ColumnQID, ColumnEntity, ColumnMention, ColumnScore}

const maxLineSize = 16 * 1024 * 1024

type ReaderOption func(*TSVReader)

// WithNormalizedMentions applies Unicode NFC to mention text so that canonically
// equivalent spellings compare equal in the substring and word tests.
func WithNormalizedMentions() ReaderOption {
	return func(r *TSVReader) {
		r.normalize = true
	}
}

// TSVReader reads entity ranking runs: a header row followed by one candidate per
// line. Fields are separated by tabs only; quote characters carry no meaning.
type TSVReader struct {
	reader    io.Reader
	normalize bool
}

func NewTSVReader(reader io.Reader, opts ...ReaderOption) *TSVReader {
	r := &TSVReader{reader: reader}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type row struct {
	line   int
	fields map[string]string
}

// rows returns every data row keyed by its header name. The header must name
// all required columns; extra columns are carried along.
func (tr *TSVReader) rows() ([]row, error) {
	scanner := bufio.NewScanner(tr.reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read header: %w", err)
		}
		return nil, apperr.NewRecord(1, "", "missing header row")
	}
	headers := splitLine(scanner.Text())
	if err := checkHeader(headers); err != nil {
		return nil, err
	}

	var rows []row
	line := 1
	for scanner.Scan() {
		line++
		text := strings.TrimRight(scanner.Text(), "\r")
		if text == "" {
			continue
		}
		fields := splitLine(text)
		if len(fields) < len(headers) {
			return nil, apperr.NewRecord(line, headers[len(fields)],
				fmt.Sprintf("expected %d fields, got %d", len(headers), len(fields)))
		}

		record := make(map[string]string, len(headers))
		for i, h := range headers {
			record[h] = fields[i]
		}
		rows = append(rows, row{line: line, fields: record})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", line+1, err)
	}

	return rows, nil
}

// Read parses all rows into per-query annotation tables. Any malformed row aborts
// the read.
func (tr *TSVReader) Read() (Set, error) {
	rows, err := tr.rows()
	if err != nil {
		return nil, err
	}

	set := make(Set)
	for _, r := range rows {
		line, rec := r.line, r.fields
		score, err := strconv.ParseFloat(strings.TrimSpace(rec[ColumnScore]), 64)
		if err != nil {
			return nil, apperr.NewRecordWrap(line, ColumnScore, "score is not a number", err)
		}

		mention := rec[ColumnMention]
		if tr.normalize {
			mention = norm.NFC.String(mention)
		}
		set.Add(rec[ColumnQID], mention, rec[ColumnEntity], score)
	}

	slog.Debug("annotations loaded", "rows", len(rows), "queries", len(set))
	return set, nil
}

func ReadFile(path string, opts ...ReaderOption) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open annotations: %w", err)
	}
	defer f.Close()

	set, err := NewTSVReader(f, opts...).Read()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return set, nil
}

func checkHeader(headers []string) error {
	present := make(map[string]struct{}, len(headers))
	for _, h := range headers {
		present[h] = struct{}{}
	}
	for _, col := range requiredColumns {
		if _, ok := present[col]; !ok {
			return apperr.NewRecord(1, col, "missing column in header")
		}
	}
	return nil
}

func splitLine(line string) []string {
	return strings.Split(strings.TrimRight(line, "\r"), "\t")
}

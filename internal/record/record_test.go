package record

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DjordjeVuckovic/elq-eval/internal/annotation"
	"github.com/DjordjeVuckovic/elq-eval/internal/eval/metrics"
	"github.com/DjordjeVuckovic/elq-eval/internal/interpret"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalize(t *testing.T) {
	interprets := map[string][]interpret.Interpretation{
		"q1": {
			{},
			{"new york": "m.1", "times": "m.3"},
			{"times": "m.3", "new york": "m.1"},
			{"ny": "m.1", "york times": "m.3", "nyt": "m.3"},
			{"new jersey": "m.2"},
		},
		"q2": {{}},
	}

	got := Canonicalize(interprets)

	assert.Equal(t, []Record{
		{Confidence: "1", Entities: []string{"m.1", "m.3"}},
		{Confidence: "1", Entities: []string{"m.2"}},
	}, got["q1"])
	assert.Empty(t, got["q2"])
	assert.Equal(t, 2, got.RecordCount())
}

func TestCanonicalize_Idempotent(t *testing.T) {
	interprets := map[string][]interpret.Interpretation{
		"q1": {{"a": "m.2", "b": "m.1"}, {"c": "m.1", "d": "m.2"}, {"e": "m.3"}},
	}
	first := Canonicalize(interprets)

	again := make(map[string][]interpret.Interpretation)
	for qid, records := range first {
		for _, rec := range records {
			in := interpret.Interpretation{}
			for i, en := range rec.Entities {
				in[strings.Repeat("x", i+1)] = en
			}
			again[qid] = append(again[qid], in)
		}
	}

	assert.Equal(t, first, Canonicalize(again))
}

func TestWrite(t *testing.T) {
	results := Results{
		"q3": {{Confidence: "1", Entities: []string{"m.1"}}, {Confidence: "1", Entities: []string{"m.2"}}},
		"q1": {{Confidence: "1", Entities: []string{"m.1"}}},
		"q2": {{Confidence: "1", Entities: []string{"m.1", "m.2"}}},
		"q4": nil,
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, results))
	assert.Equal(t, "q1\t1\tm.1\n"+
		"q2\t1\tm.1\tm.2\n"+
		"q3\t1\tm.1\n"+
		"q3\t1\tm.2\n", buf.String())
}

func TestEndToEnd(t *testing.T) {
	set := annotation.Set{
		"q1": {
			{Mention: "the beatles", Entity: "m.1"}:  30,
			{Mention: "the", Entity: "m.2"}:          25,
			{Mention: "beatles song", Entity: "m.3"}: 10,
		},
	}
	th := 20.0
	formed, err := interpret.NewEngine(&th).ProcessAll(t.Context(), set, 1)
	require.NoError(t, err)

	zero := 0.0
	more, err := interpret.NewEngine(&zero).ProcessAll(t.Context(), annotation.Set{
		"q2": {{Mention: "red", Entity: "m.1"}: 50, {Mention: "blue", Entity: "m.2"}: 40},
		"q3": {{Mention: "new york", Entity: "m.1"}: 50, {Mention: "new jersey", Entity: "m.2"}: 40},
	}, 2)
	require.NoError(t, err)
	for qid, in := range more {
		formed[qid] = in
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Canonicalize(formed)))
	assert.Equal(t, "q1\t1\tm.1\n"+
		"q2\t1\tm.1\tm.2\n"+
		"q3\t1\tm.1\n"+
		"q3\t1\tm.2\n", buf.String())
}

func TestParse(t *testing.T) {
	data := "q1\t1\tm.1\tm.2\n" +
		"q1\t1\tm.3\n" +
		"\n" +
		"q2\n" +
		"q3\t1\n" +
		"q4\t0.5\tm.9\t\tm.9\r\n"

	got, err := Parse(strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, Interpretations{
		"q1": {metrics.NewEntitySet("m.1", "m.2"), metrics.NewEntitySet("m.3")},
		"q2": nil,
		"q3": nil,
		"q4": {metrics.NewEntitySet("m.9")},
	}, got)
}

func TestWriteParseFile(t *testing.T) {
	results := Results{
		"q1": {{Confidence: "1", Entities: []string{"m.1", "m.2"}}},
		"q2": {{Confidence: "1", Entities: []string{"m.3"}}, {Confidence: "1", Entities: []string{"m.4"}}},
	}
	path := filepath.Join(t.TempDir(), "run-GIF-th20.0.txt")

	require.NoError(t, WriteFile(path, results))
	_, err := os.Stat(path)
	require.NoError(t, err)

	loaded, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, entitySets(results), loaded)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		input     string
		threshold float64
		want      string
	}{
		{"ERD-dev_MLMcg.tsv", 20, "ERD-dev_MLMcg-GIF-th20.0.txt"},
		{"runs/dev.tsv", 0.5, "runs/dev-GIF-th0.5.txt"},
		{"runs.v2/dev", -3, "runs.v2/dev-GIF-th-3.0.txt"},
		{"a.b.tsv", 1e-7, "a.b-GIF-th0.0000001.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, OutputPath(tt.input, tt.threshold))
		})
	}
}

func entitySets(r Results) Interpretations {
	out := make(Interpretations, len(r))
	for qid, records := range r {
		for _, rec := range records {
			out[qid] = append(out[qid], metrics.NewEntitySet(rec.Entities...))
		}
	}
	return out
}

package filelist

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testRows is an in-memory RowFactory.
type testRows struct {
	labels  []string
	symbols []Symbol
	cleaned int
}

func (r *testRows) Clean() {
	r.cleaned++
	r.labels = nil
	r.symbols = nil
}

func (r *testRows) AddRow(symbol Symbol, label string) Row {
	r.labels = append(r.labels, label)
	r.symbols = append(r.symbols, symbol)
	return Row(len(r.labels) - 1)
}

func (r *testRows) RowLabel(row Row) string {
	return r.labels[row]
}

func (r *testRows) RowSymbol(row Row) Symbol {
	return r.symbols[row]
}

func (r *testRows) find(label string) Row {
	for i, l := range r.labels {
		if l == label {
			return Row(i)
		}
	}
	return -1
}

// makeTree creates dirs (names ending with "/") and files under root.
func makeTree(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		p := filepath.Join(root, filepath.FromSlash(name))
		if name[len(name)-1] == '/' {
			require.NoError(t, os.MkdirAll(p, 0755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		require.NoError(t, os.WriteFile(p, []byte("a,b\n1,2\n"), 0644))
	}
}

func labels(entries []Entry) []string {
	result := make([]string, len(entries))
	for i, e := range entries {
		result[i] = e.Label
	}
	return result
}

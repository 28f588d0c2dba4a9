package tably_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"tably"
)

func TestParseFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    tably.Format
		wantErr require.ErrorAssertionFunc
	}{
		"html":    {input: "html", want: tably.HTML, wantErr: require.NoError},
		"text":    {input: "text", want: tably.Text, wantErr: require.NoError},
		"xlsx":    {input: "xlsx", want: tably.XLSX, wantErr: require.NoError},
		"unknown": {input: "csv", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := tably.ParseFormat(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormats(t *testing.T) {
	t.Parallel()
	got := tably.Formats()
	assert.Equal(t, []tably.Format{tably.HTML, tably.Text, tably.XLSX}, got)
	// Returned slice must be a copy.
	got[0] = "modified"
	assert.Equal(t, tably.HTML, tably.Formats()[0])
}

func TestWriteUnsupportedFormat(t *testing.T) {
	t.Parallel()
	table := tably.New(nil, "x")
	table.JSON = []byte(`[{"a":1}]`)
	err := table.Write(&bytes.Buffer{}, "csv")
	require.Error(t, err)
	assert.ErrorIs(t, err, tably.ErrUnsupportedFormat)
}

func TestRenderEndToEnd(t *testing.T) {
	t.Parallel()
	doc := tably.NewDocument("orders")
	table := tably.New(doc, "orders")
	table.JSON = []byte(`{"d":{"results":[{"Title":"B","Status":"Open"},{"Title":"A","Status":"Closed"}]}}`)
	table.IncludeHeaders = []string{"Title", "Status"}
	table.SortBy = &tably.SortSpec{Field: "Status", Order: "asc"}

	table.Render()

	out, ok := doc.Content("orders")
	require.True(t, ok)
	// Two columns, caller's order.
	assert.Contains(t, out, "<th>Title</th>")
	assert.Contains(t, out, "<th>Status</th>")
	assert.Less(t, strings.Index(out, "<th>Title</th>"), strings.Index(out, "<th>Status</th>"))
	// Ascending by Status: the Closed row renders before the Open row.
	assert.Less(t, strings.Index(out, "<td>Closed</td>"), strings.Index(out, "<td>Open</td>"))
	assert.Less(t, strings.Index(out, "<td>A</td>"), strings.Index(out, "<td>B</td>"))
}

func TestRenderMissingContainer(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zap.ErrorLevel)
	doc := tably.NewDocument("present")

	table := tably.New(doc, "absent")
	table.JSON = []byte(`[{"a":1}]`)
	table.Logger = zap.New(core)

	assert.NotPanics(t, table.Render)

	// Only a diagnostic, no document mutation.
	content, ok := doc.Content("present")
	require.True(t, ok)
	assert.Empty(t, content)
	_, ok = doc.Content("absent")
	assert.False(t, ok)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Contains(t, entry.Message, "container not found")
	assert.Equal(t, "absent", entry.ContextMap()["container"])
}

func TestRenderNilDocument(t *testing.T) {
	t.Parallel()
	table := tably.New(nil, "orders")
	table.JSON = []byte(`[{"a":1}]`)
	assert.NotPanics(t, table.Render)
}

func TestRenderReplacesPriorContent(t *testing.T) {
	t.Parallel()
	doc := tably.NewDocument("orders")
	table := tably.New(doc, "orders")

	table.JSON = []byte(`[{"Title":"first"}]`)
	table.Render()
	table.JSON = []byte(`[{"Title":"second"}]`)
	table.Render()

	out, _ := doc.Content("orders")
	assert.Contains(t, out, "second")
	assert.NotContains(t, out, "first")
}

func TestRenderNoData(t *testing.T) {
	t.Parallel()
	doc := tably.NewDocument("orders")
	table := tably.New(doc, "orders")
	table.Data = map[string]any{"unexpected": "shape"}

	table.Render()

	out, _ := doc.Content("orders")
	assert.Contains(t, out, "No data available")
	assert.NotContains(t, out, "<table")
}

func TestRenderDecodedData(t *testing.T) {
	t.Parallel()
	doc := tably.NewDocument("orders")
	table := tably.New(doc, "orders")
	table.Data = map[string]any{
		"results": []any{
			map[string]any{"Title": "A", "Due": "2024-03-05T10:00:00Z"},
		},
	}
	table.Dates = &tably.DateFormat{ShowDate: true}

	table.Render()

	out, _ := doc.Content("orders")
	assert.Contains(t, out, "<td>3/5/2024</td>")
}

func TestConcurrentRendersLastWriterWins(t *testing.T) {
	t.Parallel()
	doc := tably.NewDocument("orders")

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			table := tably.New(doc, "orders")
			table.JSON = []byte(`[{"Title":"A"}]`)
			table.Render()
		}()
	}
	wg.Wait()

	out, ok := doc.Content("orders")
	require.True(t, ok)
	assert.Contains(t, out, "<td>A</td>")
}

func TestDocumentAddContainerClearsContent(t *testing.T) {
	t.Parallel()
	doc := tably.NewDocument("orders")
	table := tably.New(doc, "orders")
	table.JSON = []byte(`[{"Title":"A"}]`)
	table.Render()

	doc.AddContainer("orders")
	out, ok := doc.Content("orders")
	require.True(t, ok)
	assert.Empty(t, out)
}

package tably_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"tably"
)

func TestWriteXLSX(t *testing.T) {
	t.Parallel()
	table := tably.New(nil, "x")
	table.JSON = []byte(`[{"Name":"Alice","Age":30},{"Name":"Bob","Age":9}]`)
	table.SortBy = &tably.SortSpec{Field: "Age", Order: "asc"}
	table.Style = tably.Style{HeaderBackground: "#336699", HeaderText: "#FFFFFF"}

	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf, tably.XLSX))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	get := func(cell string) string {
		v, err := f.GetCellValue("Sheet1", cell)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "Name", get("A1"))
	assert.Equal(t, "Age", get("B1"))
	// Sorted ascending by Age: Bob (9) before Alice (30).
	assert.Equal(t, "Bob", get("A2"))
	assert.Equal(t, "9", get("B2"))
	assert.Equal(t, "Alice", get("A3"))
	assert.Equal(t, "30", get("B3"))
}

func TestWriteXLSXEmpty(t *testing.T) {
	t.Parallel()
	table := tably.New(nil, "x")
	table.JSON = []byte(`{}`)

	var buf bytes.Buffer
	require.NoError(t, table.Write(&buf, tably.XLSX))

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue("Sheet1", "A1")
	require.NoError(t, err)
	assert.Empty(t, v)
}

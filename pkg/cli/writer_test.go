package cli

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khalid-nowaf/treescan/pkg/scanner"
	"github.com/khalid-nowaf/treescan/pkg/tree"
)

// buildScanTree assembles a small scanned tree by hand:
//
//	root/
//	  a.txt  (10 bytes)
//	  sub/
//	    b.bin  (20 bytes)
func buildScanTree() *tree.Tree[scanner.FileInfo] {
	t := tree.NewTree(scanner.FileInfo{Name: "root", Type: scanner.Directory, Size: 30})
	t.GetHead().AppendChild(scanner.FileInfo{Name: "a", Extension: ".txt", Size: 10, Type: scanner.Regular})
	sub := t.GetHead().AppendChild(scanner.FileInfo{Name: "sub", Type: scanner.Directory, Size: 20})
	sub.AppendChild(scanner.FileInfo{Name: "b", Extension: ".bin", Size: 20, Type: scanner.Regular})
	return t
}

// TestFlatten verifies pre-order flattening with rebuilt paths.
func TestFlatten(t *testing.T) {
	records := flatten(buildScanTree())

	require.Len(t, records, 4, "One record per node")
	assert.Equal(t, "root", records[0].Path, "The root should come first")
	assert.Equal(t, filepath.Join("root", "a.txt"), records[1].Path, "File paths should include the extension")
	assert.Equal(t, filepath.Join("root", "sub"), records[2].Path, "Directories should precede their children")
	assert.Equal(t, filepath.Join("root", "sub", "b.bin"), records[3].Path, "Nested paths should join every ancestor")
	assert.Equal(t, 2, records[3].Depth, "Depth should count ancestor hops")
	assert.Equal(t, "directory", records[0].Type, "Types should be spelled out")
}

// TestJsonWriter round-trips the flattened records through the JSON output.
func TestJsonWriter(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.json")

	writer := &JsonWriter{}
	require.NoError(t, writer.Write(buildScanTree(), outPath))

	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)

	decoded := []Record{}
	require.NoError(t, json.Unmarshal(raw, &decoded), "Output should be a well-formed JSON array")
	assert.Equal(t, flatten(buildScanTree()), decoded, "Decoded records should match the flattened tree")
}

// TestCsvWriter verifies header and row layout of the CSV output.
func TestCsvWriter(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "out.csv")

	writer := &CsvWriter{}
	require.NoError(t, writer.Write(buildScanTree(), outPath))

	file, err := os.Open(outPath)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 5, "Header plus one row per node")
	assert.Equal(t, []string{"path", "size", "type", "depth"}, rows[0], "Header should name every column")
	assert.Equal(t, []string{filepath.Join("root", "sub", "b.bin"), "20", "regular", "2"}, rows[4],
		"Rows should serialize size, type and depth")
}

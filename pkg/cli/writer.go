package cli

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/khalid-nowaf/treescan/pkg/scanner"
	"github.com/khalid-nowaf/treescan/pkg/tree"
)

// Record is one flattened row of a scanned tree.
type Record struct {
	Path  string `json:"path"`
	Size  int64  `json:"size"`
	Type  string `json:"type"`
	Depth int    `json:"depth"`
}

// Writer serializes a scanned tree to a file.
type Writer interface {
	Write(fileTree *tree.Tree[scanner.FileInfo], filePath string) error
}

// flatten walks the tree in pre-order and produces one record per node, so
// parents always precede their children in the output.
func flatten(fileTree *tree.Tree[scanner.FileInfo]) []Record {
	records := []Record{}
	for it := fileTree.PreOrder(); it.Valid(); it.Next() {
		node := it.Node()
		records = append(records, Record{
			Path:  nodePath(node),
			Size:  node.Data.Size,
			Type:  node.Data.Type.String(),
			Depth: tree.Depth(node),
		})
	}
	return records
}

// nodePath rebuilds the slash-joined path of a node from its ancestor chain.
func nodePath(node *tree.Node[scanner.FileInfo]) string {
	segment := node.Data.Name + node.Data.Extension
	if parent := node.GetParent(); parent != nil {
		return filepath.Join(nodePath(parent), segment)
	}
	return segment
}

type JsonWriter struct{}

func (w *JsonWriter) Write(fileTree *tree.Tree[scanner.FileInfo], filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	if _, err = file.Write([]byte("[")); err != nil {
		return err
	}
	for i, record := range flatten(fileTree) {
		if i > 0 {
			if _, err = file.Write([]byte(",")); err != nil {
				return err
			}
		}
		if err = encoder.Encode(record); err != nil {
			return err
		}
	}
	if _, err = file.Write([]byte("]")); err != nil {
		return err
	}
	return nil
}

type CsvWriter struct{}

func (w *CsvWriter) Write(fileTree *tree.Tree[scanner.FileInfo], filePath string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"path", "size", "type", "depth"}); err != nil {
		return err
	}
	for _, record := range flatten(fileTree) {
		row := []string{
			record.Path,
			strconv.FormatInt(record.Size, 10),
			record.Type,
			strconv.Itoa(record.Depth),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return nil
}

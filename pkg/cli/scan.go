package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/docker/go-units"

	"github.com/khalid-nowaf/treescan/pkg/scanner"
	"github.com/khalid-nowaf/treescan/pkg/tree"
)

// ScanCmd scans a directory into a tree, runs the post-passes, and
// optionally writes the flattened result to a file.
type ScanCmd struct {
	Path    string `arg:"" type:"existingdir" help:"Directory to scan"`
	Workers int    `help:"Number of scan workers (0 means one per CPU)" default:"0"`
	Prune   bool   `help:"Remove zero-size nodes after scanning"`
	Sort    bool   `help:"Sort every directory's children by size, largest first"`
	Output  string `help:"Write flattened scan results to this file"`
	Format  string `help:"Output format for --output" enum:"json,csv" default:"json"`
}

// Run executes the scan command.
func (cmd *ScanCmd) Run() error {
	ConfigureLogging()

	s, err := scanner.NewDriveScanner(cmd.Path, cmd.Workers)
	if err != nil {
		return err
	}

	stopReporting := reportProgress(s.GetProgress())
	err = s.Start(context.Background())
	stopReporting()
	if err != nil {
		return err
	}

	fileTree := s.GetTree()
	if cmd.Prune {
		pruned := scanner.PruneEmpty(fileTree)
		fmt.Printf("pruned %d zero-size nodes\n", pruned)
	}
	if cmd.Sort {
		tree.SortTree(fileTree, func(lhs, rhs scanner.FileInfo) bool {
			if lhs.Size != rhs.Size {
				return lhs.Size > rhs.Size
			}
			return lhs.Name < rhs.Name
		})
	}

	progress := s.GetProgress()
	fmt.Printf("files scanned:       %d\n", progress.FilesScanned.Load())
	fmt.Printf("directories scanned: %d\n", progress.DirectoriesScanned.Load())
	fmt.Printf("bytes processed:     %s\n", units.HumanSize(float64(progress.BytesProcessed.Load())))
	fmt.Printf("tree size:           %d nodes\n", fileTree.Size())

	if cmd.Output != "" {
		var writer Writer
		if cmd.Format == "csv" {
			writer = &CsvWriter{}
		} else {
			writer = &JsonWriter{}
		}
		if err := writer.Write(fileTree, cmd.Output); err != nil {
			return err
		}
		fmt.Printf("results written to %s\n", cmd.Output)
	}
	return nil
}

// reportProgress prints a live file counter once a second until the returned
// stop function is called.
func reportProgress(progress *scanner.Progress) func() {
	done := make(chan struct{})
	finished := make(chan struct{})

	go func() {
		defer close(finished)
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				fmt.Printf("files scanned: %d\r", progress.FilesScanned.Load())
			}
		}
	}()

	return func() {
		close(done)
		<-finished
	}
}

package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/khalid-nowaf/treescan/pkg/scanner"
	"github.com/khalid-nowaf/treescan/pkg/tree"
)

// BenchCmd scans a directory once, then times each traversal strategy over a
// number of trials and reports the averages.
type BenchCmd struct {
	Path    string `arg:"" type:"existingdir" help:"Directory to scan"`
	Trials  int    `help:"Timed traversals per strategy" default:"100"`
	Workers int    `help:"Number of scan workers (0 means one per CPU)" default:"0"`
}

// Run executes the bench command.
func (cmd *BenchCmd) Run() error {
	ConfigureLogging()

	fmt.Println("scanning directory to create a large tree...")
	s, err := scanner.NewDriveScanner(cmd.Path, cmd.Workers)
	if err != nil {
		return err
	}
	if err := s.Start(context.Background()); err != nil {
		return err
	}

	fileTree := s.GetTree()
	fmt.Printf("tree size: %d nodes\n\n", fileTree.Size())

	trials := []struct {
		name     string
		traverse func() *tree.Iterator[scanner.FileInfo]
	}{
		{name: "pre-order", traverse: fileTree.PreOrder},
		{name: "post-order", traverse: fileTree.PostOrder},
		{name: "leaf", traverse: fileTree.Leaves},
	}

	for _, trial := range trials {
		average := runTrials(cmd.Trials, func() {
			var nodeCount int
			var totalBytes int64
			for it := trial.traverse(); it.Valid(); it.Next() {
				nodeCount++
				if it.Node().Data.Type == scanner.Regular {
					totalBytes += it.Node().Data.Size
				}
			}
		})
		fmt.Printf("average %s traversal time: %v\n", trial.name, average)
	}
	return nil
}

// runTrials runs the callable the requested number of times and returns the
// average wall-clock duration of one run.
func runTrials(count int, callable func()) time.Duration {
	if count < 1 {
		count = 1
	}
	var total time.Duration
	for i := 0; i < count; i++ {
		start := time.Now()
		callable()
		total += time.Since(start)
	}
	return total / time.Duration(count)
}

// Package scanner populates a tree.Tree[FileInfo] from a directory on disk.
// A pool of workers discovers entries concurrently; the only shared state is
// the tree itself, guarded by one mutex held just for the link splice of each
// AppendChild. Traversal and sizing happen strictly after the workers join.
package scanner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/khalid-nowaf/treescan/pkg/tree"
)

// DriveScanner walks a directory tree and records every readable file and
// directory as a node. Unreadable entries are logged and skipped; a scan
// never fails because of a single bad path.
type DriveScanner struct {
	rootPath string
	fileTree *tree.Tree[FileInfo]
	progress Progress
	workers  int

	mu sync.Mutex // guards fileTree mutation
}

// NewDriveScanner creates a scanner rooted at the given directory. The
// number of workers defaults to GOMAXPROCS when workers is not positive.
func NewDriveScanner(path string, workers int) (*DriveScanner, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("scanner: can not stat root path: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("scanner: root path %q is not a directory", path)
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	root := FileInfo{Name: filepath.Clean(path), Type: Directory}
	return &DriveScanner{
		rootPath: filepath.Clean(path),
		fileTree: tree.NewTree(root),
		workers:  workers,
	}, nil
}

// GetTree returns the file tree. Safe to traverse only once Start has
// returned.
func (s *DriveScanner) GetTree() *tree.Tree[FileInfo] {
	return s.fileTree
}

// GetProgress returns the live scan counters.
func (s *DriveScanner) GetProgress() *Progress {
	return &s.progress
}

// Start scans the root path, blocks until every worker has joined, then runs
// the directory size post-pass. The context cancels the scan early; the tree
// is left partially built in that case.
func (s *DriveScanner) Start(ctx context.Context) error {
	s.progress.Reset()

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(s.workers)

	s.scanDirectory(ctx, group, s.rootPath, s.fileTree.GetHead())
	err := group.Wait()

	ComputeDirectorySizes(s.fileTree)
	s.progress.ScanCompleted.Store(true)
	return err
}

// scanDirectory queues one worker per entry of the directory. Workers append
// to the shared tree under the scanner mutex and recurse into readable
// subdirectories.
func (s *DriveScanner) scanDirectory(ctx context.Context, group *errgroup.Group, path string, node *tree.Node[FileInfo]) {
	entries, err := os.ReadDir(path)
	if err != nil {
		// Some directories are off limits (permissions, transient errors).
		// Log and keep scanning, matching the tolerant behavior expected of
		// a crawler.
		slog.Debug("skipping unreadable directory", "path", path, "error", err)
		return
	}

	for _, entry := range entries {
		entryPath := filepath.Join(path, entry.Name())
		task := func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.processPath(ctx, group, entryPath, node)
			return nil
		}
		// TryGo instead of Go: a blocking Go from inside a worker could
		// deadlock once every slot is taken, so run inline when the pool
		// is saturated.
		if !group.TryGo(task) {
			_ = task()
		}
	}
}

// processPath classifies a single path and links it into the tree. Symbolic
// links are never followed, so the scan cannot cycle.
func (s *DriveScanner) processPath(ctx context.Context, group *errgroup.Group, path string, node *tree.Node[FileInfo]) {
	info, err := os.Lstat(path)
	if err != nil {
		slog.Debug("skipping unreadable entry", "path", path, "error", err)
		return
	}

	switch {
	case info.Mode()&os.ModeSymlink != 0:
		// recorded as a zero-size leaf, never followed
		s.progress.FilesScanned.Add(1)

		s.mu.Lock()
		node.AppendChild(FileInfo{Name: filepath.Base(path), Type: Symlink})
		s.mu.Unlock()

	case info.Mode().IsRegular():
		s.processFile(path, info.Size(), node)

	case info.IsDir():
		directoryInfo := FileInfo{Name: filepath.Base(path), Type: Directory}

		s.mu.Lock()
		child := node.AppendChild(directoryInfo)
		s.mu.Unlock()

		s.progress.DirectoriesScanned.Add(1)
		s.scanDirectory(ctx, group, path, child)
	}
}

func (s *DriveScanner) processFile(path string, size int64, node *tree.Node[FileInfo]) {
	s.progress.FilesScanned.Add(1)
	if size == 0 {
		return
	}
	s.progress.BytesProcessed.Add(size)

	base := filepath.Base(path)
	extension := filepath.Ext(base)
	fileInfo := FileInfo{
		Name:      strings.TrimSuffix(base, extension),
		Extension: extension,
		Size:      size,
		Type:      Regular,
	}

	s.mu.Lock()
	node.AppendChild(fileInfo)
	s.mu.Unlock()
}

// ComputeDirectorySizes walks the tree in post-order and accumulates every
// node's size into its parent directory. Post-order guarantees a directory's
// own total is final before it is added to the grandparent.
func ComputeDirectorySizes(t *tree.Tree[FileInfo]) {
	for it := t.PostOrder(); it.Valid(); it.Next() {
		node := it.Node()
		parent := node.GetParent()
		if parent == nil {
			continue
		}
		if parent.Data.Type == Directory {
			parent.Data.Size += node.Data.Size
		}
	}
}

// PruneEmpty removes every zero-size node, pruning empty files and the
// directories that end up holding nothing. Returns the number of nodes
// removed.
func PruneEmpty(t *tree.Tree[FileInfo]) int {
	return tree.DeleteWhere(t, func(data FileInfo) bool {
		return data.Size == 0
	})
}

package scanner

import "sync/atomic"

// Progress tracks file system scan progress. All counters are atomic so a
// reporting goroutine can read them while the workers are still scanning.
type Progress struct {
	FilesScanned       atomic.Int64
	DirectoriesScanned atomic.Int64
	BytesProcessed     atomic.Int64
	ScanCompleted      atomic.Bool
}

// Reset clears the scanning progress counters.
func (p *Progress) Reset() {
	p.FilesScanned.Store(0)
	p.DirectoriesScanned.Store(0)
	p.BytesProcessed.Store(0)
	p.ScanCompleted.Store(false)
}

package scanner

// FileType distinguishes the three kinds of entries the scanner records:
// regular files, directories, and symbolic links.
type FileType int

const (
	Regular FileType = iota
	Directory
	Symlink
)

func (ft FileType) String() string {
	switch ft {
	case Regular:
		return "regular"
	case Directory:
		return "directory"
	case Symlink:
		return "symlink"
	}
	return "unknown"
}

// FileInfo is the payload carried by every node of a scanned file tree.
// Directory sizes start at zero and are filled in by ComputeDirectorySizes
// once scanning has finished.
type FileInfo struct {
	Name      string
	Extension string
	Size      int64
	Type      FileType
}

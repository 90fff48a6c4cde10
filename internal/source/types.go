package source

// FileID uniquely identifies a source file within a FileSet.
type FileID uint32

// FileFlags encodes metadata discovered while loading a source file.
type FileFlags uint8

const (
	// FileVirtual marks a file added from memory rather than disk (tests, stdin).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM marks a file whose UTF-8 byte order mark was stripped.
	FileHadBOM
	// FileNormalizedCRLF marks a file whose CRLF line endings were normalized to LF.
	FileNormalizedCRLF
)

// File captures metadata and content for a single loaded source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // byte offset of every '\n' in Content
	Hash    [32]byte // SHA-256 digest of Content
	Flags   FileFlags
}

// LineCol is a human-readable, 1-based position within a source file.
type LineCol struct {
	Line uint32
	Col  uint32
}

package ports

type AccessMode int

const (
	ReadWrite = iota
	ReadWriteExecute
	ReadAllWriteOwner
)

type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, content []byte, accessMode AccessMode) error
	FileExists(path string) (bool, error)
	// MakeExecutable sets the file's permission bits to 0755,
	// regardless of what they were before.
	MakeExecutable(path string) error
}

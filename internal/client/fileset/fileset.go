// Package fileset implements the ordered, name-deduplicated collection of
// files selected for a batch operation.
//
// A FileSet is a value: Add and Remove return a new set and never modify the
// receiver, so a snapshot taken before a submission stays stable while the
// request is being built.
package fileset

import "github.com/Kerimcanak/SnapCryptor/internal/client/models"

// FileSet is an ordered sequence of FileHandle with unique names.
// The zero value is an empty set.
type FileSet struct {
	files []models.FileHandle
}

// New builds a set from files using the same rules as Add.
func New(files ...models.FileHandle) FileSet {
	return FileSet{}.Add(files...)
}

// Add returns a set with every element of newFiles appended in input order,
// skipping names already present or seen earlier in newFiles (first occurrence wins).
func (s FileSet) Add(newFiles ...models.FileHandle) FileSet {
	if len(newFiles) == 0 {
		return s
	}

	seen := make(map[string]struct{}, len(s.files)+len(newFiles))
	for _, f := range s.files {
		seen[f.Name] = struct{}{}
	}

	out := make([]models.FileHandle, len(s.files), len(s.files)+len(newFiles))
	copy(out, s.files)

	for _, f := range newFiles {
		if _, ok := seen[f.Name]; ok {
			continue
		}
		seen[f.Name] = struct{}{}
		out = append(out, f)
	}
	return FileSet{files: out}
}

// Remove returns a set without the entry named name. An absent name is a no-op.
func (s FileSet) Remove(name string) FileSet {
	for i, f := range s.files {
		if f.Name != name {
			continue
		}
		out := make([]models.FileHandle, 0, len(s.files)-1)
		out = append(out, s.files[:i]...)
		out = append(out, s.files[i+1:]...)
		return FileSet{files: out}
	}
	return s
}

func (s FileSet) IsEmpty() bool {
	return len(s.files) == 0
}

func (s FileSet) Len() int {
	return len(s.files)
}

// Files returns a copy of the handles in insertion order.
func (s FileSet) Files() []models.FileHandle {
	out := make([]models.FileHandle, len(s.files))
	copy(out, s.files)
	return out
}

// Names returns the file names in insertion order.
func (s FileSet) Names() []string {
	out := make([]string, len(s.files))
	for i, f := range s.files {
		out[i] = f.Name
	}
	return out
}

func (s FileSet) Contains(name string) bool {
	for _, f := range s.files {
		if f.Name == name {
			return true
		}
	}
	return false
}

// TotalSize is the sum of the reported sizes of all files.
func (s FileSet) TotalSize() int64 {
	var n int64
	for _, f := range s.files {
		n += f.Size
	}
	return n
}

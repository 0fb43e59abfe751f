// Package picker turns user input (paths typed in the REPL or passed on the
// command line) into file handles ready to be added to a selection.
package picker

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"

	"github.com/Kerimcanak/SnapCryptor/internal/client/models"
	"github.com/Kerimcanak/SnapCryptor/internal/common"
)

// detectFile is a test seam for mimetype.DetectFile.
var detectFile = mimetype.DetectFile

// FromPaths stats every path and returns one handle per regular file, in
// argument order. Content is not read here; each handle re-opens its file
// when the request body is written. The first unusable path aborts the pick.
func FromPaths(paths ...string) ([]models.FileHandle, error) {
	out := make([]models.FileHandle, 0, len(paths))
	for _, p := range paths {
		h, err := fromPath(p)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}

func fromPath(p string) (models.FileHandle, error) {
	info, err := os.Stat(p)
	if err != nil {
		return models.FileHandle{}, fmt.Errorf("pick %s: %w", p, err)
	}
	if info.IsDir() {
		return models.FileHandle{}, fmt.Errorf("pick %s: %w", p, common.ErrIsDirectory)
	}

	contentType := models.DefaultContentType
	if mt, err := detectFile(p); err == nil && mt != nil {
		contentType = mt.String()
	}

	return models.FileHandle{
		Name:        filepath.Base(p),
		Size:        info.Size(),
		ContentType: contentType,
		Source:      models.PathSource(p),
	}, nil
}

// FromBytes builds an in-memory handle.
func FromBytes(name string, data []byte) models.FileHandle {
	return models.FileHandle{
		Name:        name,
		Size:        int64(len(data)),
		ContentType: mimetype.Detect(data).String(),
		Source:      models.BytesSource(data),
	}
}

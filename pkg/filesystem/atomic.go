package filesystem

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/arthur-debert/exticons/pkg/types"
	"github.com/google/uuid"
)

// Exists reports whether name exists. Errors other than "not exist" are returned.
func Exists(fsys types.FS, name string) (bool, error) {
	_, err := fsys.Stat(name)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// WriteFileAtomic writes data next to name under a unique temporary name and
// renames it into place. Either the new content is fully visible at name or
// the previous file (if any) is left untouched; the temporary file never
// survives a failure.
func WriteFileAtomic(fsys types.FS, name string, data []byte, perm fs.FileMode) error {
	dir, base := filepath.Split(name)
	tmp := filepath.Join(dir, "."+base+".tmp-"+uuid.NewString())

	if err := fsys.WriteFile(tmp, data, perm); err != nil {
		_ = fsys.Remove(tmp)
		return err
	}
	if err := fsys.Rename(tmp, name); err != nil {
		_ = fsys.Remove(tmp)
		return err
	}
	return nil
}

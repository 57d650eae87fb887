// Package upload stores incoming product images on disk and hands back the
// URL they will be served under.
package upload

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Saver struct {
	Dir     string
	BaseURL string
}

// Save writes one multipart file part beneath s.Dir and returns the absolute
// URL the stored file resolves to. The stored name is the current millisecond
// timestamp plus the original extension, so two uploads completing within the
// same millisecond would collide; that matches the system this replaces and
// is not strengthened here. A failed write is returned as-is and any partial
// file is left behind.
func (s *Saver) Save(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", err
	}

	name := strconv.FormatInt(time.Now().UnixMilli(), 10) + filepath.Ext(fh.Filename)
	dst, err := os.Create(filepath.Join(s.Dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return s.BaseURL + "/uploads/" + name, nil
}

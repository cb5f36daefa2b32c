package output

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// ResultDir is where relative output paths are written.
const ResultDir = "result"

var unsafeFilenameChars = regexp.MustCompile(`[^\w.-]`)

// SanitizeFilename replaces characters that are unsafe in file names.
func SanitizeFilename(name string) string {
	safe := unsafeFilenameChars.ReplaceAllString(name, "_")
	safe = strings.Trim(safe, " .")
	if safe == "" {
		return "leakjar_result"
	}
	return safe
}

// ResolvePath places relative paths under ResultDir.
func ResolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	clean := filepath.Clean(path)
	if clean == ResultDir || strings.HasPrefix(clean, ResultDir+string(os.PathSeparator)) {
		return clean
	}
	return filepath.Join(ResultDir, clean)
}

// WriteFile creates path (and its directory) and fills it with write.
func WriteFile(path string, write func(io.Writer) error) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := write(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Compress stores src in a zip archive next to it and removes src.
// It returns the archive path, which never equals src.
func Compress(src string) (string, error) {
	dst := strings.TrimSuffix(src, filepath.Ext(src)) + ".zip"
	if dst == src {
		dst = src + ".zip"
	}

	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return "", err
	}

	err = WriteFile(dst, func(w io.Writer) error {
		zw := zip.NewWriter(w)
		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		header.Name = filepath.Base(src)
		header.Method = zip.Deflate

		entry, err := zw.CreateHeader(header)
		if err != nil {
			return err
		}
		if _, err := io.Copy(entry, in); err != nil {
			return err
		}
		return zw.Close()
	})
	if err != nil {
		return "", err
	}

	in.Close()
	if err := os.Remove(src); err != nil {
		return "", fmt.Errorf("remove %s: %w", src, err)
	}
	return dst, nil
}

package importer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileInfo describes a candidate export file in the import directory.
type FileInfo struct {
	Name string
	Path string
	Size int64
}

// processedDir is where imported files are moved after a successful batch.
const processedDir = "processed"

// MaxFileSize is the default cap on one export file (5 MB, matching the
// upload limit of the original web importer).
const MaxFileSize int64 = 5 * 1024 * 1024

// ValidateFile applies the caller-side checks that run before a batch:
// extension and size. The messages are user-facing.
func ValidateFile(name string, size, maxBytes int64) error {
	lower := strings.ToLower(name)
	if !strings.HasSuffix(lower, ".csv") && !strings.HasSuffix(lower, ".txt") {
		return fmt.Errorf("Please select a CSV file (.csv or .txt)")
	}
	if maxBytes > 0 && size > maxBytes {
		return fmt.Errorf("File size too large. Maximum size is %dMB.", maxBytes/(1024*1024))
	}
	return nil
}

// Scan returns importable files (.csv/.txt) directly inside dir, skipping
// subdirectories. A missing directory yields no files and no error.
func Scan(dir string) ([]FileInfo, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading import dir: %w", err)
	}

	var files []FileInfo
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		lower := strings.ToLower(e.Name())
		if !strings.HasSuffix(lower, ".csv") && !strings.HasSuffix(lower, ".txt") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		files = append(files, FileInfo{
			Name: e.Name(),
			Path: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	return files, nil
}

// MarkProcessed moves a file from dir into dir/processed/.
func MarkProcessed(dir, fileName string) error {
	dstDir := filepath.Join(dir, processedDir)
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return fmt.Errorf("creating processed dir: %w", err)
	}

	src := filepath.Join(dir, fileName)
	dst := filepath.Join(dstDir, fileName)
	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("moving %s to processed: %w", fileName, err)
	}
	return nil
}

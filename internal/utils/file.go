package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// DirExists checks if a directory exists
func DirExists(dirname string) bool {
	info, err := os.Stat(dirname)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// FileExists checks if a file exists and is not a directory
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// IsJPEG reports whether a filename has a JPEG extension. Directory
// entries of any other type are skipped by the batch runner.
func IsJPEG(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".jpg" || ext == ".jpeg"
}

// OutputFilename builds the output path for a processed file by
// inserting the postfix between the base name and the extension.
func OutputFilename(outputDir, filename, postfix string) string {
	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)
	return filepath.Join(outputDir, base+postfix+ext)
}

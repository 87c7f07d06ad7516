package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	typogrify "github.com/alnah/go-typogrify"
	"github.com/alnah/go-typogrify/internal/fileutil"
)

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .md, .markdown, .html or .htm extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

var (
	markdownExts = []string{".md", ".markdown"}
	htmlExts     = []string{".html", ".htm"}
)

// typogrifiedSuffix names HTML output that would otherwise overwrite its
// own HTML source.
const typogrifiedSuffix = ".typogrified"

// FileToConvert is one file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
	Markdown   bool
}

// discoverFiles finds the documents under inputPath. A file argument must
// have a supported extension; a directory is walked and unsupported files
// are skipped, as is earlier output.
func discoverFiles(inputPath, outputDir string, format typogrify.Format) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateInputExtension(inputPath); err != nil {
			return nil, err
		}
		return []FileToConvert{newFileToConvert(inputPath, outputDir, "", format)}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || validateInputExtension(path) != nil || isTypogrifiedOutput(path) {
			return nil
		}
		files = append(files, newFileToConvert(path, outputDir, inputPath, format))
		return nil
	})

	return files, err
}

func newFileToConvert(path, outputDir, baseInputDir string, format typogrify.Format) FileToConvert {
	return FileToConvert{
		InputPath:  path,
		OutputPath: resolveOutputPath(path, outputDir, baseInputDir, format),
		Markdown:   fileutil.HasExtension(path, markdownExts...),
	}
}

// resolveOutputPath determines where the output for inputPath goes.
// outputDir may name a file when it ends in the format's extension.
func resolveOutputPath(inputPath, outputDir, baseInputDir string, format typogrify.Format) string {
	outExt := "." + string(format)
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	var out string
	switch {
	case outputDir == "":
		out = filepath.Join(filepath.Dir(inputPath), base+outExt)
	case strings.HasSuffix(strings.ToLower(outputDir), outExt):
		out = outputDir
	default:
		out = filepath.Join(outputDir, base+outExt)
		if baseInputDir != "" {
			if rel, err := filepath.Rel(baseInputDir, inputPath); err == nil {
				out = filepath.Join(outputDir, filepath.Dir(rel), base+outExt)
			}
		}
	}

	// Case-insensitive file systems would see a.HTML and a.html as one file.
	if strings.EqualFold(filepath.Clean(out), filepath.Clean(inputPath)) {
		out = strings.TrimSuffix(out, outExt) + typogrifiedSuffix + outExt
	}
	return out
}

func isTypogrifiedOutput(path string) bool {
	ext := filepath.Ext(path)
	return strings.HasSuffix(strings.TrimSuffix(path, ext), typogrifiedSuffix)
}

func validateInputExtension(path string) error {
	if fileutil.HasExtension(path, markdownExts...) || fileutil.HasExtension(path, htmlExts...) {
		return nil
	}
	return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
}

// validateWorkers checks that the worker count is within bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > typogrify.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, typogrify.MaxPoolSize)
	}
	return nil
}

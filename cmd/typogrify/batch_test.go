package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	typogrify "github.com/alnah/go-typogrify"
)

// ---------------------------------------------------------------------------
// Test Infrastructure - Mock converter and pool
// ---------------------------------------------------------------------------

// mockConverter records inputs and upper-cases them.
type mockConverter struct {
	mu     sync.Mutex
	inputs []typogrify.Input
	err    error
}

func (m *mockConverter) Convert(_ context.Context, in typogrify.Input) (*typogrify.Result, error) {
	m.mu.Lock()
	m.inputs = append(m.inputs, in)
	m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	src := in.HTML + in.Markdown
	return &typogrify.Result{HTML: []byte(strings.ToUpper(src)), PDF: []byte("%PDF-1.4 " + src)}, nil
}

type mockPool struct {
	conv       CLIConverter
	size       int
	acquireErr error
	acquired   atomic.Int32
	released   atomic.Int32
	closed     atomic.Bool
}

func (p *mockPool) Acquire() (CLIConverter, error) {
	if p.acquireErr != nil {
		return nil, p.acquireErr
	}
	p.acquired.Add(1)
	return p.conv, nil
}

func (p *mockPool) Release(CLIConverter) { p.released.Add(1) }
func (p *mockPool) Size() int            { return p.size }

func (p *mockPool) Close() error {
	p.closed.Store(true)
	return nil
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
}

// ---------------------------------------------------------------------------
// TestConvertBatch
// ---------------------------------------------------------------------------

func TestConvertBatch(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.md": "# a", "b.html": "<p>b</p>", "c.md": "c"})

	files, err := discoverFiles(dir, filepath.Join(dir, "out"), typogrify.FormatHTML)
	if err != nil {
		t.Fatal(err)
	}

	conv := &mockConverter{}
	pool := &mockPool{conv: conv, size: 2}
	results := convertBatch(context.Background(), pool, files, conversionParams{format: typogrify.FormatHTML})

	if len(results) != 3 {
		t.Fatalf("got %d results, want 3", len(results))
	}
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("%s: %v", r.InputPath, r.Err)
		}
	}
	if got := pool.acquired.Load(); got != 2 {
		t.Errorf("acquired %d converters, want 2", got)
	}
	if pool.acquired.Load() != pool.released.Load() {
		t.Errorf("acquired %d, released %d", pool.acquired.Load(), pool.released.Load())
	}

	got, err := os.ReadFile(filepath.Join(dir, "out", "b.html"))
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "<P>B</P>" {
		t.Errorf("b.html = %q", got)
	}

	for _, in := range conv.inputs {
		if in.SourceDir != dir {
			t.Errorf("SourceDir = %q, want %q", in.SourceDir, dir)
		}
		if (in.Markdown == "") == (in.HTML == "") {
			t.Errorf("input must set exactly one of Markdown and HTML: %+v", in)
		}
	}
}

func TestConvertBatch_Empty(t *testing.T) {
	t.Parallel()

	if got := convertBatch(context.Background(), &mockPool{size: 1}, nil, conversionParams{}); got != nil {
		t.Errorf("got %v, want nil", got)
	}
}

func TestConvertBatch_AcquireError(t *testing.T) {
	t.Parallel()

	files := []FileToConvert{{InputPath: "a.md"}, {InputPath: "b.md"}}
	pool := &mockPool{size: 1, acquireErr: typogrify.ErrStyleNotFound}

	for _, r := range convertBatch(context.Background(), pool, files, conversionParams{}) {
		if !errors.Is(r.Err, typogrify.ErrStyleNotFound) {
			t.Errorf("%s: err = %v, want ErrStyleNotFound", r.InputPath, r.Err)
		}
	}
}

func TestConvertBatch_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	files := []FileToConvert{{InputPath: "a.md"}}
	results := convertBatch(ctx, &mockPool{conv: &mockConverter{}, size: 1}, files, conversionParams{})
	if !errors.Is(results[0].Err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", results[0].Err)
	}
}

// ---------------------------------------------------------------------------
// TestConvertFile
// ---------------------------------------------------------------------------

func TestConvertFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"doc.md": "hello"})
	blocker := filepath.Join(dir, "blocker")
	writeFiles(t, dir, map[string]string{"blocker": ""})

	tests := []struct {
		name     string
		file     FileToConvert
		conv     *mockConverter
		params   conversionParams
		wantErr  error
		wantFile string
	}{
		{
			name:     "pdf",
			file:     FileToConvert{InputPath: filepath.Join(dir, "doc.md"), OutputPath: filepath.Join(dir, "pdf", "doc.pdf"), Markdown: true},
			conv:     &mockConverter{},
			params:   conversionParams{format: typogrify.FormatPDF, paperSize: typogrify.PaperA4},
			wantFile: "%PDF-1.4 hello",
		},
		{
			name:    "missing input",
			file:    FileToConvert{InputPath: filepath.Join(dir, "nope.md"), OutputPath: filepath.Join(dir, "nope.html")},
			conv:    &mockConverter{},
			wantErr: ErrReadInput,
		},
		{
			name:    "converter error",
			file:    FileToConvert{InputPath: filepath.Join(dir, "doc.md"), OutputPath: filepath.Join(dir, "x.html")},
			conv:    &mockConverter{err: typogrify.ErrHTMLConversion},
			wantErr: typogrify.ErrHTMLConversion,
		},
		{
			name:    "unwritable output",
			file:    FileToConvert{InputPath: filepath.Join(dir, "doc.md"), OutputPath: filepath.Join(blocker, "x.html")},
			conv:    &mockConverter{},
			wantErr: ErrWriteOutput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			params := tt.params
			if params.format == "" {
				params.format = typogrify.FormatHTML
			}
			r := convertFile(context.Background(), tt.conv, tt.file, params)

			if tt.wantErr != nil {
				if !errors.Is(r.Err, tt.wantErr) {
					t.Errorf("err = %v, want %v", r.Err, tt.wantErr)
				}
				return
			}
			if r.Err != nil {
				t.Fatalf("unexpected error: %v", r.Err)
			}
			got, err := os.ReadFile(tt.file.OutputPath)
			if err != nil {
				t.Fatal(err)
			}
			if string(got) != tt.wantFile {
				t.Errorf("output = %q, want %q", got, tt.wantFile)
			}
			if in := tt.conv.inputs[0]; in.PaperSize != typogrify.PaperA4 || in.Markdown != "hello" {
				t.Errorf("input = %+v", in)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestPrintResults
// ---------------------------------------------------------------------------

func TestPrintResults(t *testing.T) {
	t.Parallel()

	results := []ConversionResult{
		{InputPath: "a.md", OutputPath: "a.html", Duration: 12 * time.Millisecond},
		{InputPath: "b.md", Err: ErrWriteOutput},
	}

	tests := []struct {
		name       string
		quiet      bool
		verbose    bool
		wantStdout []string
		absent     []string
	}{
		{name: "normal", wantStdout: []string{"Created a.html", "1 succeeded, 1 failed"}},
		{name: "verbose", verbose: true, wantStdout: []string{"a.md -> a.html (12ms)"}},
		{name: "quiet", quiet: true, absent: []string{"Created", "succeeded"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			env := &Environment{Stdout: &stdout, Stderr: &stderr}

			if failed := printResults(results, tt.quiet, tt.verbose, env); failed != 1 {
				t.Errorf("failed = %d, want 1", failed)
			}
			for _, want := range tt.wantStdout {
				if !strings.Contains(stdout.String(), want) {
					t.Errorf("stdout %q missing %q", stdout.String(), want)
				}
			}
			for _, no := range tt.absent {
				if strings.Contains(stdout.String(), no) {
					t.Errorf("stdout %q should not contain %q", stdout.String(), no)
				}
			}
			if !strings.Contains(stderr.String(), "FAILED b.md") || !strings.Contains(stderr.String(), "hint:") {
				t.Errorf("stderr = %q", stderr.String())
			}
		})
	}
}

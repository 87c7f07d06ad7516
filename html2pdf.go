package typogrify

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-typogrify/internal/fileutil"
	"github.com/alnah/go-typogrify/internal/process"
)

// pdfConverter abstracts HTML to PDF conversion.
type pdfConverter interface {
	ToPDF(ctx context.Context, doc string, opts *pdfOptions) ([]byte, error)
	Close() error
}

// pdfRenderer renders an HTML file to PDF, so tests can run without a
// browser.
type pdfRenderer interface {
	RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error)
}

type pdfOptions struct {
	PaperSize PaperSize
}

const marginInches = 0.75

// rodRenderer implements pdfRenderer with go-rod. Rod downloads Chromium
// on first use when no browser is configured.
type rodRenderer struct {
	mu       sync.Mutex
	browser  *rod.Browser
	launcher *launcher.Launcher
	timeout  time.Duration
	getenv   func(string) string
}

func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout, getenv: os.Getenv}
}

// launcherFor applies ROD_BROWSER_BIN and the sandbox switches.
func (r *rodRenderer) launcherFor() *launcher.Launcher {
	l := launcher.New()

	bin := r.getenv("ROD_BROWSER_BIN")
	if bin != "" {
		l = l.Bin(bin)
	}
	if noSandbox(r.getenv) {
		l = l.NoSandbox(true)
	}
	return l
}

// noSandbox is true in CI, with ROD_NO_SANDBOX=1, or with an explicit
// browser binary (usually a container image).
func noSandbox(getenv func(string) string) bool {
	return getenv("CI") == "true" || getenv("ROD_NO_SANDBOX") == "1" || getenv("ROD_BROWSER_BIN") != ""
}

// ensureBrowser lazily launches and connects to the browser.
func (r *rodRenderer) ensureBrowser() (*rod.Browser, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser != nil {
		return r.browser, nil
	}

	l := r.launcherFor()
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	b := rod.New().ControlURL(u)
	if err := b.Connect(); err != nil {
		killBrowser(l)
		return nil, fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	r.browser = b
	r.launcher = l
	return b, nil
}

// Close releases browser resources.
func (r *rodRenderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.browser == nil {
		return nil
	}
	err := r.browser.Close()
	killBrowser(r.launcher)
	r.browser = nil
	r.launcher = nil
	return err
}

// killBrowser reaps Chrome's renderer and GPU children, which can outlive
// the browser process when it is closed over CDP.
func killBrowser(l *launcher.Launcher) {
	if l == nil {
		return
	}
	if pid := l.PID(); pid > 0 {
		process.KillProcessGroup(pid)
	}
	l.Kill()
}

// RenderFromFile opens a local HTML file in headless Chrome and prints it.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string, opts *pdfOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	browser, err := r.ensureBrowser()
	if err != nil {
		return nil, err
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: "file://" + filePath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer func() { _ = page.Close() }()

	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.Timeout(timeout).PDF(buildPDFOptions(opts))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return pdf, nil
}

// buildPDFOptions sizes the page; backgrounds are printed so the caps and
// amp styling shows.
func buildPDFOptions(opts *pdfOptions) *proto.PagePrintToPDF {
	var size PaperSize
	if opts != nil {
		size = opts.PaperSize
	}
	width, height := size.dimensions()

	return &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(width),
		PaperHeight:     floatPtr(height),
		MarginTop:       floatPtr(marginInches),
		MarginBottom:    floatPtr(marginInches),
		MarginLeft:      floatPtr(marginInches),
		MarginRight:     floatPtr(marginInches),
		PrintBackground: true,
	}
}

func floatPtr(v float64) *float64 {
	return &v
}

// rodConverter writes the document to a temporary file and renders it.
type rodConverter struct {
	renderer pdfRenderer
	closer   io.Closer
}

func newRodConverter(timeout time.Duration) *rodConverter {
	r := newRodRenderer(timeout)
	return &rodConverter{renderer: r, closer: r}
}

// ToPDF implements pdfConverter.
func (c *rodConverter) ToPDF(ctx context.Context, doc string, opts *pdfOptions) ([]byte, error) {
	tmpPath, cleanup, err := fileutil.WriteTempFile(doc, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	return c.renderer.RenderFromFile(ctx, tmpPath, opts)
}

// Close releases browser resources.
func (c *rodConverter) Close() error {
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}

package typogrify

import (
	"errors"

	"github.com/alnah/go-typogrify/internal/assets"
	"github.com/alnah/go-typogrify/internal/htmltoken"
	"github.com/alnah/go-typogrify/internal/pipeline"
)

// Sentinel errors for library operations. The text transforms never fail;
// these come from New, NewConverter and Convert.
var (
	ErrEmptyInput     = errors.New("input cannot be empty")
	ErrAmbiguousInput = errors.New("input sets both Markdown and HTML")
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	ErrInvalidSkipTag   = htmltoken.ErrInvalidTagName
	ErrInvalidFormat    = errors.New("invalid output format")
	ErrInvalidPaperSize = errors.New("invalid paper size")

	// Asset loading errors.
	ErrStyleNotFound    = assets.ErrStyleNotFound
	ErrInvalidAssetPath = errors.New("invalid asset path")
)

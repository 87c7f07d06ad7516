package main

import (
	"errors"
	"os"

	flag "github.com/spf13/pflag"

	typogrify "github.com/alnah/go-typogrify"
	"github.com/alnah/go-typogrify/internal/assets"
	"github.com/alnah/go-typogrify/internal/config"
	"github.com/alnah/go-typogrify/internal/logging"
)

// Exit codes follow Unix conventions: 0 success, 1 general, 2 usage, and
// custom codes below 126.
const (
	ExitSuccess = 0
	ExitGeneral = 1
	ExitUsage   = 2 // invalid flags, config, or input
	ExitIO      = 3 // file not found, permission denied
	ExitBrowser = 4 // Chrome errors
)

// exitCodeFor maps err to an exit code. Wrapped errors are matched with
// errors.Is.
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, typogrify.ErrBrowserConnect) ||
		errors.Is(err, typogrify.ErrPageCreate) ||
		errors.Is(err, typogrify.ErrPageLoad) ||
		errors.Is(err, typogrify.ErrPDFGeneration) {
		return ExitBrowser
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) ||
		errors.Is(err, logging.ErrLogFile) {
		return ExitIO
	}

	if errors.Is(err, flag.ErrHelp) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, logging.ErrInvalidLevel) ||
		errors.Is(err, logging.ErrInvalidFormat) ||
		errors.Is(err, typogrify.ErrEmptyInput) ||
		errors.Is(err, typogrify.ErrInvalidSkipTag) ||
		errors.Is(err, typogrify.ErrInvalidFormat) ||
		errors.Is(err, typogrify.ErrInvalidPaperSize) ||
		errors.Is(err, typogrify.ErrStyleNotFound) ||
		errors.Is(err, typogrify.ErrInvalidAssetPath) ||
		errors.Is(err, assets.ErrInvalidAssetName) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, errUsage) {
		return ExitUsage
	}

	return ExitGeneral
}

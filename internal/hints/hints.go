// Package hints appends actionable advice to error messages. Every hint is
// rendered as "\n  hint: <text>".
package hints

import (
	"os"
	"strings"

	"github.com/alnah/go-typogrify/internal/fileutil"
)

// Env is the part of the process environment the hints inspect.
type Env struct {
	Getenv      func(string) string
	InContainer func() bool
}

// ProcessEnv reads the real environment. A container is detected by the
// /.dockerenv file Docker creates.
func ProcessEnv() Env {
	return Env{
		Getenv:      os.Getenv,
		InContainer: func() bool { return fileutil.FileExists("/.dockerenv") },
	}
}

func (e Env) inCI() bool {
	for _, key := range []string{"CI", "GITHUB_ACTIONS", "GITLAB_CI", "JENKINS_URL"} {
		if e.Getenv(key) != "" {
			return true
		}
	}
	return false
}

// ForBrowserConnect suggests the environment variables that usually fix a
// failed Chrome launch.
func ForBrowserConnect(env Env) string {
	var tips []string
	if (env.inCI() || env.InContainer()) && env.Getenv("ROD_NO_SANDBOX") != "1" {
		tips = append(tips, "set ROD_NO_SANDBOX=1 for Docker/CI")
	}
	if env.Getenv("ROD_BROWSER_BIN") == "" {
		tips = append(tips, "set ROD_BROWSER_BIN to use an installed Chrome")
	}
	return render(tips...)
}

// ForTimeout points at the PDF timeout setting.
func ForTimeout() string {
	return render("for long documents, raise --timeout or pdf.timeout")
}

// ForConfigNotFound suggests --config, and the first user config location
// among searched.
func ForConfigNotFound(searched []string) string {
	tip := "use --config /path/to/file.yaml"
	for _, p := range searched {
		if strings.Contains(p, ".config/go-typogrify") {
			tip += " or create " + p
			break
		}
	}
	return render(tip)
}

// ForOutputDirectory is shown when an output file cannot be written.
func ForOutputDirectory() string {
	return render("check the parent directory exists and is writable")
}

// ForStyleNotFound lists the styles that do exist.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return render("available: " + strings.Join(available, ", "))
}

// ForSkipTag explains what a skip tag name may contain.
func ForSkipTag() string {
	return render("skip tags are element names such as pre, code, or kbd")
}

// render joins tips into one hint line, or returns "" when there are none.
func render(tips ...string) string {
	if len(tips) == 0 || (len(tips) == 1 && tips[0] == "") {
		return ""
	}
	return "\n  hint: " + strings.Join(tips, "; ")
}

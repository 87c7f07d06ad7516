package typogrify

import (
	"errors"
	"testing"
)

func TestFormat_Validate(t *testing.T) {
	t.Parallel()

	for _, f := range []Format{"", FormatHTML, FormatPDF, "PDF"} {
		if err := f.Validate(); err != nil {
			t.Errorf("Format(%q).Validate() = %v", f, err)
		}
	}
	if err := Format("epub").Validate(); !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("Format(epub).Validate() = %v, want ErrInvalidFormat", err)
	}
	if got := Format("").normalize(); got != FormatHTML {
		t.Errorf("normalize() = %q, want html", got)
	}
	if got := Format("PDF").normalize(); got != FormatPDF {
		t.Errorf("normalize(PDF) = %q, want pdf", got)
	}
}

func TestPaperSize_Validate(t *testing.T) {
	t.Parallel()

	for _, p := range []PaperSize{"", PaperLetter, PaperA4, PaperLegal, "A4"} {
		if err := p.Validate(); err != nil {
			t.Errorf("PaperSize(%q).Validate() = %v", p, err)
		}
	}
	if err := PaperSize("tabloid").Validate(); !errors.Is(err, ErrInvalidPaperSize) {
		t.Errorf("PaperSize(tabloid).Validate() = %v, want ErrInvalidPaperSize", err)
	}
	if w, h := PaperSize("").dimensions(); w != 8.5 || h != 11 {
		t.Errorf("default dimensions = %vx%v, want letter", w, h)
	}
}

func TestInput_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{name: "markdown", input: Input{Markdown: "# x"}},
		{name: "html pdf", input: Input{HTML: "<p>x</p>", Format: FormatPDF, PaperSize: PaperA4}},
		{name: "empty", input: Input{}, wantErr: ErrEmptyInput},
		{name: "both", input: Input{Markdown: "x", HTML: "x"}, wantErr: ErrAmbiguousInput},
		{name: "format", input: Input{HTML: "x", Format: "txt"}, wantErr: ErrInvalidFormat},
		{name: "paper", input: Input{HTML: "x", PaperSize: "b5"}, wantErr: ErrInvalidPaperSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.input.Validate()
			if tt.wantErr == nil && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

type sample struct {
	Mode     string   `yaml:"mode"`
	SkipTags []string `yaml:"skipTags"`
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    string
		strict  bool
		want    sample
		wantErr error
	}{
		{
			name: "fields",
			data: "mode: qde\nskipTags: [pre, code]\n",
			want: sample{Mode: "qde", SkipTags: []string{"pre", "code"}},
		},
		{
			name: "unknown field ignored",
			data: "mode: \"2\"\nextra: 1\n",
			want: sample{Mode: "2"},
		},
		{
			name:    "empty",
			data:    "",
			wantErr: ErrNilData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got sample
			err := Unmarshal([]byte(tt.data), &got)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Unmarshal() error = %v, want %v", err, tt.wantErr)
			}
			if got.Mode != tt.want.Mode || strings.Join(got.SkipTags, ",") != strings.Join(tt.want.SkipTags, ",") {
				t.Errorf("Unmarshal() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	var ok sample
	if err := UnmarshalStrict([]byte("mode: \"1\"\n"), &ok); err != nil {
		t.Fatalf("UnmarshalStrict() unexpected error: %v", err)
	}
	if ok.Mode != "1" {
		t.Errorf("Mode = %q, want 1", ok.Mode)
	}

	var bad sample
	err := UnmarshalStrict([]byte("mode: \"1\"\nmdoe: typo\n"), &bad)
	if err == nil {
		t.Fatal("UnmarshalStrict() should reject unknown field")
	}
	if !strings.HasPrefix(err.Error(), "yamlutil:") {
		t.Errorf("error %q should carry the package prefix", err)
	}
}

func TestUnmarshal_Guards(t *testing.T) {
	t.Parallel()

	if err := Unmarshal([]byte("a: 1"), nil); !errors.Is(err, ErrNilDestination) {
		t.Errorf("nil destination error = %v, want ErrNilDestination", err)
	}

	big := []byte("mode: " + strings.Repeat("q", MaxInputSize))
	var s sample
	if err := Unmarshal(big, &s); !errors.Is(err, ErrInputTooLarge) {
		t.Errorf("oversized input error = %v, want ErrInputTooLarge", err)
	}
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	out, err := Marshal(sample{Mode: "qde", SkipTags: []string{"pre"}})
	if err != nil {
		t.Fatalf("Marshal() unexpected error: %v", err)
	}

	var back sample
	if err := UnmarshalStrict(out, &back); err != nil {
		t.Fatalf("UnmarshalStrict(Marshal()) unexpected error: %v", err)
	}
	if back.Mode != "qde" || len(back.SkipTags) != 1 {
		t.Errorf("decoded %+v from %q", back, out)
	}
}

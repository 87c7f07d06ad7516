package smartypants

import "testing"

func TestParseMode(t *testing.T) {
	t.Parallel()

	full := Options{Quotes: true, BackticksDouble: true, Dashes: DashesStandard, Ellipses: true}

	tests := []struct {
		name string
		mode string
		want Options
	}{
		{name: "empty means default preset", mode: "", want: full},
		{name: "preset 0", mode: "0", want: Options{}},
		{name: "preset 1", mode: "1", want: full},
		{
			name: "preset 2",
			mode: "2",
			want: Options{Quotes: true, BackticksDouble: true, Dashes: DashesOldSchool, Ellipses: true},
		},
		{
			name: "preset 3",
			mode: "3",
			want: Options{Quotes: true, BackticksDouble: true, Dashes: DashesOldSchoolInverted, Ellipses: true},
		},
		{name: "stupefy", mode: "-1", want: Options{Stupefy: true}},
		{name: "quotes only", mode: "q", want: Options{Quotes: true}},
		{name: "single backticks imply double", mode: "B", want: Options{BackticksDouble: true, BackticksSingle: true}},
		{name: "last dash letter wins", mode: "dDi", want: Options{Dashes: DashesOldSchoolInverted}},
		{
			name: "all letters",
			mode: "qBDew",
			want: Options{Quotes: true, BackticksDouble: true, BackticksSingle: true, Dashes: DashesOldSchool, Ellipses: true, ConvertQuot: true},
		},
		{name: "unknown letters ignored", mode: "qxyz!", want: Options{Quotes: true}},
		{name: "only unknown letters", mode: "xyz", want: Options{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ParseMode(tt.mode); got != tt.want {
				t.Errorf("ParseMode(%q) = %+v, want %+v", tt.mode, got, tt.want)
			}
		})
	}
}

func TestOptions_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		opts Options
		want string
	}{
		{opts: Options{}, want: "0"},
		{opts: Options{Stupefy: true}, want: "-1"},
		{opts: ParseMode("1"), want: "qbde"},
		{opts: ParseMode("2"), want: "qbDe"},
		{opts: ParseMode("3"), want: "qbie"},
		{opts: ParseMode("qBw"), want: "qBw"},
	}

	for _, tt := range tests {
		if got := tt.opts.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.opts, got, tt.want)
		}
		if back := ParseMode(tt.opts.String()); back != tt.opts {
			t.Errorf("ParseMode(%q) = %+v, want %+v", tt.opts.String(), back, tt.opts)
		}
	}
}

func TestOptions_Enabled(t *testing.T) {
	t.Parallel()

	if (Options{}).Enabled() {
		t.Error("zero Options should be disabled")
	}
	if !(Options{Ellipses: true}).Enabled() {
		t.Error("Options with ellipses should be enabled")
	}
}

package render

import (
	"testing"
	"time"
)

func TestTruncate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"tags stripped before length check", "<b>hello</b> world", 5, "hello..."},
		{"short text untouched", "short", 50, "short"},
		{"exact length has no ellipsis", "abcde", 5, "abcde"},
		{"tags only", "<p></p>", 10, ""},
		{"unclosed bracket kept", "a < b", 10, "a < b"},
		{"multibyte counted as characters", "héllo wörld", 5, "héllo..."},
		{"attributes stripped", `<a href="x">link</a> text`, 100, "link text"},
		{"negative max clamps to zero", "abc", -3, "..."},
		{"negative max on empty text", "", -1, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Truncate(tc.in, tc.max); got != tc.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	cases := map[int64]string{
		3661: "1h 1m",
		59:   "0m",
		0:    "0m",
		60:   "1m",
		3600: "1h 0m",
		7322: "2h 2m",
	}
	for in, want := range cases {
		if got := FormatDuration(in); got != want {
			t.Errorf("FormatDuration(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	// 2023-11-14T22:13:20Z
	if got := FormatDate(1700000000, time.UTC, DefaultDateLayout); got != "11/14/2023" {
		t.Errorf("Unexpected date %q", got)
	}
	if got := FormatDate(1700000000, time.UTC, "2006-01-02"); got != "2023-11-14" {
		t.Errorf("Unexpected date %q with custom layout", got)
	}
}

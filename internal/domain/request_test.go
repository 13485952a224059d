package domain

import (
	"path/filepath"
	"testing"
)

func TestStripExtension(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"mycode", "mycode"},
		{"code.bmp", "code"},
		{"code.PNG", "code"},
		{"archive.tar.gz", "archive"},
		{"with space.jpg", "with space"},
	}
	for _, c := range cases {
		got, err := StripExtension(c.input)
		if err != nil {
			t.Errorf("StripExtension(%q) unexpected error: %v", c.input, err)
			continue
		}
		if got != c.want {
			t.Errorf("StripExtension(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestStripExtension_Rejects(t *testing.T) {
	for _, in := range []string{"", ".png", "  .jpg", "sub/code", "../code"} {
		if _, err := StripExtension(in); !IsKind(err, KindUsage) {
			t.Errorf("StripExtension(%q) expected usage error, got %v", in, err)
		}
	}
}

func TestNormalizeDirectory(t *testing.T) {
	got, err := NormalizeDirectory("./out/")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "out" {
		t.Fatalf("expected out, got %q", got)
	}

	if _, err := NormalizeDirectory("   "); !IsKind(err, KindUsage) {
		t.Fatalf("expected usage error for blank directory, got %v", err)
	}
}

func TestNewInvocationRequest_Path(t *testing.T) {
	cases := []struct {
		name   string
		format Format
		want   string
	}{
		{"mycode", FormatPNG, filepath.Join("out", "mycode.png")},
		{"mycode", FormatJPEG, filepath.Join("out", "mycode.jpg")},
		{"code.bmp", FormatPNG, filepath.Join("out", "code.png")},
	}
	for _, c := range cases {
		req, err := NewInvocationRequest("https://example.com", "./out/", c.name, c.format)
		if err != nil {
			t.Fatalf("NewInvocationRequest(%q) error: %v", c.name, err)
		}
		if got := req.Path(); got != c.want {
			t.Errorf("Path() = %q, want %q", got, c.want)
		}
	}
}

func TestNewInvocationRequest_RequiresFormat(t *testing.T) {
	if _, err := NewInvocationRequest("x", "out", "code", FormatUnset); !IsKind(err, KindUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestNewInvocationRequest_AllowsEmptyText(t *testing.T) {
	req, err := NewInvocationRequest("", "out", "code", FormatPNG)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Text != "" {
		t.Fatalf("expected empty text preserved")
	}
}

func TestParseFormat(t *testing.T) {
	cases := []struct {
		input string
		want  Format
		ok    bool
	}{
		{"png", FormatPNG, true},
		{"PNG", FormatPNG, true},
		{"jpg", FormatJPEG, true},
		{"JPEG", FormatJPEG, true},
		{"gif", FormatUnset, false},
		{"", FormatUnset, false},
	}
	for _, c := range cases {
		got, err := ParseFormat(c.input)
		if (err == nil) != c.ok || got != c.want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v ok=%v", c.input, got, err, c.want, c.ok)
		}
	}
}

func TestFormatFromChoice(t *testing.T) {
	if f, err := FormatFromChoice("1"); err != nil || f != FormatPNG {
		t.Errorf("choice 1: got %v, %v", f, err)
	}
	if f, err := FormatFromChoice("2"); err != nil || f != FormatJPEG {
		t.Errorf("choice 2: got %v, %v", f, err)
	}
	if _, err := FormatFromChoice("3"); err == nil {
		t.Errorf("expected error for choice 3")
	}
}

func TestFormatExtension(t *testing.T) {
	if FormatPNG.Extension() != ".png" || FormatJPEG.Extension() != ".jpg" || FormatUnset.Extension() != "" {
		t.Fatalf("unexpected extensions")
	}
}

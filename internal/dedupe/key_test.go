package dedupe

import "testing"

func TestKey_StripsRenameSuffixes(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/src/1-1-07 283.jpg", "1-1-07"},
		{"/src/1-1-07 283_1.jpg", "1-1-07"},
		{"/src/H1019100.JPG", "h"},
		{"/src/H1019100_2.JPG", "h"},
		{"/src/name_2.jpg", "name"},
		{"/src/name.jpg", "name"},
		{"/src/photo (2).png", "photo"},
		{"/src/photo.png", "photo"},
		{"/src/report.pdf", "report"},
		{"/src/vacation.mp4", "vacation"},
	}
	for _, tt := range tests {
		if got := Key(tt.path); got != tt.want {
			t.Errorf("Key(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestKey_EqualForRenamedCopies(t *testing.T) {
	pairs := [][2]string{
		{"img001.jpg", "img001_1.jpg"},
		{"1-1-07 283.jpg", "1-1-07 283_1.jpg"},
		{"report.pdf", "report_2.pdf"},
		{"scan.png", "scan (3).png"},
	}
	for _, p := range pairs {
		if Key(p[0]) != Key(p[1]) {
			t.Errorf("Key(%q) = %q, Key(%q) = %q; want equal",
				p[0], Key(p[0]), p[1], Key(p[1]))
		}
	}
}

func TestKey_DistinctStems(t *testing.T) {
	if Key("a.jpg") == Key("b.jpg") {
		t.Error("dissimilar stems must produce different keys")
	}
}

func TestKey_CaseInsensitive(t *testing.T) {
	if Key("IMG_XYZ.JPG") != Key("img_xyz.jpg") {
		t.Error("keys should be case-insensitive")
	}
}

func TestKey_Symmetric(t *testing.T) {
	// The gate itself is symmetric: equality of keys does not depend on
	// argument order.
	a, b := "holiday 01.jpg", "holiday 01_1.jpg"
	if (Key(a) == Key(b)) != (Key(b) == Key(a)) {
		t.Error("gate must be symmetric")
	}
}

func TestKey_UnicodeNormalization(t *testing.T) {
	// "café" composed (NFC) vs decomposed (NFD)
	composed := "café.jpg"
	decomposed := "café.jpg"
	if Key(composed) != Key(decomposed) {
		t.Errorf("Key(%q) = %q, Key(%q) = %q; want equal after NFC",
			composed, Key(composed), decomposed, Key(decomposed))
	}
}

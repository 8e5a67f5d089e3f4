package helper

import "testing"

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"lecture 01.mp4", "lecture01.mp4"},
		{"intro to go.mp4", "introtogo.mp4"},
		{"plain.mp4", "plain.mp4"},
		{"  padded\tname .mkv", "paddedname.mkv"},
		{"/tmp/evil path/lecture.mp4", "lecture.mp4"},
	}
	for _, tc := range cases {
		if got := SanitizeFilename(tc.in); got != tc.want {
			t.Fatalf("SanitizeFilename(%q): want=%q got=%q", tc.in, tc.want, got)
		}
	}
}

func TestIsVideoMimeType(t *testing.T) {
	if !IsVideoMimeType("video/mp4") {
		t.Fatal("video/mp4 should be accepted")
	}
	if !IsVideoMimeType("application/octet-stream") {
		t.Fatal("octet-stream should be accepted for chunk payloads")
	}
	if IsVideoMimeType("image/png") {
		t.Fatal("image/png should be rejected")
	}
}

func TestGetMimeTypeFromExtension(t *testing.T) {
	if got := GetMimeTypeFromExtension("a.mp4"); got != "video/mp4" {
		t.Fatalf("mp4: got %q", got)
	}
	if got := GetMimeTypeFromExtension("unknown.bin"); got != "application/octet-stream" {
		t.Fatalf("fallback: got %q", got)
	}
}

package services

import "testing"

func TestAllowedImageFile(t *testing.T) {
	allowed := []string{"shot.png", "photo.JPG", "pic.jpeg", "anim.gif"}
	for _, name := range allowed {
		if !AllowedImageFile(name) {
			t.Errorf("expected %q to be allowed", name)
		}
	}

	rejected := []string{"doc.pdf", "run.exe", "noext", "archive.tar.gz"}
	for _, name := range rejected {
		if AllowedImageFile(name) {
			t.Errorf("expected %q to be rejected", name)
		}
	}
}

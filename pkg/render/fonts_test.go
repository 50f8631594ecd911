package render

import "testing"

func TestLoadFonts_FallsBackToBuiltin(t *testing.T) {
	fs := loadFonts([]string{"definitely-not-a-real-font-9283.ttf"})

	if !fs.builtin() {
		t.Error("unresolvable candidates should degrade to the builtin face")
	}
	if fs.face(14) == nil {
		t.Error("face() must never return nil")
	}
}

func TestLoadFonts_NeverFails(t *testing.T) {
	// Whatever the host has installed, loading must succeed and yield
	// usable faces at several sizes.
	fs := loadFonts(fontCandidates)
	for _, size := range []float64{11, 13, 18} {
		if fs.face(size) == nil {
			t.Errorf("face(%g) = nil", size)
		}
	}
}

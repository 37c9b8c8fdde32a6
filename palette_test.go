package backdrop

import "testing"

func TestDefaultPaletteParses(t *testing.T) {
	p, err := ParsePalette(DefaultPalette)
	if err != nil {
		t.Fatal(err)
	}
	if len(p) < 8 {
		t.Errorf("palette has %d colors, want at least 8", len(p))
	}
	for i, sw := range p {
		if sw.Name != DefaultPalette[i] {
			t.Errorf("swatch %d name = %q, want %q", i, sw.Name, DefaultPalette[i])
		}
	}
}

func TestParsePaletteEmpty(t *testing.T) {
	if _, err := ParsePalette(nil); err == nil {
		t.Error("expected error for empty palette")
	}
}

func TestParsePaletteBadEntry(t *testing.T) {
	if _, err := ParsePalette([]string{"#fff", "nope"}); err == nil {
		t.Error("expected error for bad entry")
	}
}

func TestMustParsePalettePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustParsePalette([]string{"#zz"})
}

func TestPalettePick(t *testing.T) {
	p := MustParsePalette([]string{"#f00", "#0f0", "#00f"})
	if got := p.Pick(fixedRand{n: 2}); got.Name != "#00f" {
		t.Errorf("Pick = %q, want #00f", got.Name)
	}
	if got := p.Pick(fixedRand{n: 0}); got.Name != "#f00" {
		t.Errorf("Pick = %q, want #f00", got.Name)
	}
}

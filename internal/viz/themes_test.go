package viz

import "testing"

func TestGetTheme(t *testing.T) {
	if GetTheme("ocean").Name != "ocean" {
		t.Error("expected ocean theme")
	}
	if GetTheme("nope").Name != ThemeCyberpunk.Name {
		t.Error("unknown theme should fall back to cyberpunk")
	}
}

func TestNextTheme_Cycles(t *testing.T) {
	th := Themes[0]
	for range Themes {
		th = NextTheme(th)
	}
	if th.Name != Themes[0].Name {
		t.Errorf("cycling through all themes ended on %s", th.Name)
	}
}

func TestSheetColor(t *testing.T) {
	th := ThemeRetroGreen
	if th.SheetColor(len(th.Sheets)) != th.Sheets[0] {
		t.Error("sheet colors should wrap")
	}
	if th.SheetColor(AxisLayer) != th.Axis {
		t.Error("axis layer should use the axis color")
	}
}

func TestParseHex(t *testing.T) {
	r, g, b := parseHex("#ff8000")
	if r != 255 || g != 128 || b != 0 {
		t.Errorf("parseHex = %d,%d,%d", r, g, b)
	}
	if hexColor(r, g, b) != "#ff8000" {
		t.Errorf("hexColor = %s", hexColor(r, g, b))
	}
	if r, g, b := parseHex("bad"); r != 255 || g != 255 || b != 255 {
		t.Error("invalid hex should give white")
	}
}

package ui

import "testing"

func TestLayoutAndHitTest(t *testing.T) {
	buttons := Layout(500, 400, []string{"border", "center-seed"}, true)
	if len(buttons) != 4 {
		t.Fatalf("expected 4 buttons, got %d", len(buttons))
	}
	if buttons[3].Label != "Stop" || buttons[3].Action != ActionToggle {
		t.Fatalf("last button = %+v", buttons[3])
	}
	if buttons[3].Rect.Max.Y != 390 {
		t.Fatalf("toggle button should end %dpx above the bottom, ends at %d", panelPadding, buttons[3].Rect.Max.Y)
	}
	for _, b := range buttons {
		if b.Rect.Min.X < 500 || b.Rect.Max.X > 500+SidebarWidth {
			t.Fatalf("button %q escapes the sidebar: %v", b.Label, b.Rect)
		}
	}

	b, ok := HitTest(buttons, 520, godsTop+buttonHeight+buttonGap+1)
	if !ok || b.Action != ActionGod || b.God != 1 {
		t.Fatalf("HitTest on second god button = %+v, %v", b, ok)
	}
	if _, ok := HitTest(buttons, 100, 100); ok {
		t.Fatal("click on the board hit a sidebar button")
	}
	if Layout(0, 400, nil, false)[1].Label != "Start" {
		t.Fatal("stopped simulation should offer Start")
	}
}

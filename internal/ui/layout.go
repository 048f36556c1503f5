// Package ui lays out and draws the sidebar next to the board view.
package ui

import "image"

const (
	// SidebarWidth is the width of the sidebar in pixels.
	SidebarWidth = 200

	panelPadding = 10
	buttonHeight = 30
	buttonGap    = 8
	godsTop      = 60
)

// Action identifies what a sidebar button does.
type Action int

const (
	// ActionGod applies the god function at Button.God.
	ActionGod Action = iota
	// ActionClear kills every cell.
	ActionClear
	// ActionToggle starts or stops the simulation.
	ActionToggle
)

// Button is a clickable sidebar region in screen coordinates.
type Button struct {
	Label  string
	Action Action
	God    int
	Rect   image.Rectangle
}

// Layout places the sidebar buttons for a sidebar starting at originX on a
// window of the given height: one button per god function from the top, then
// clear and start/stop anchored to the bottom.
func Layout(originX, height int, gods []string, running bool) []Button {
	left := originX + panelPadding
	right := originX + SidebarWidth - panelPadding
	buttons := make([]Button, 0, len(gods)+2)
	for i, name := range gods {
		top := godsTop + i*(buttonHeight+buttonGap)
		buttons = append(buttons, Button{
			Label:  name,
			Action: ActionGod,
			God:    i,
			Rect:   image.Rect(left, top, right, top+buttonHeight),
		})
	}

	toggle := "Start"
	if running {
		toggle = "Stop"
	}
	startTop := height - panelPadding - buttonHeight
	clearTop := startTop - buttonGap - buttonHeight
	buttons = append(buttons,
		Button{Label: "Clear", Action: ActionClear, Rect: image.Rect(left, clearTop, right, clearTop+buttonHeight)},
		Button{Label: toggle, Action: ActionToggle, Rect: image.Rect(left, startTop, right, startTop+buttonHeight)},
	)
	return buttons
}

// HitTest returns the button containing (x, y).
func HitTest(buttons []Button, x, y int) (Button, bool) {
	p := image.Pt(x, y)
	for _, b := range buttons {
		if p.In(b.Rect) {
			return b, true
		}
	}
	return Button{}, false
}

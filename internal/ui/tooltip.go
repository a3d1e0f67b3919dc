// Package ui provides the StudioFolio application UI components.
//
// Icon-only controls (the project toolbar, the filter reset and the
// lightbox HUD) name their action in a hover tooltip.

package ui

import (
	"fyne.io/fyne/v2"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"
)

// newIconButtonWithTooltip creates an icon-only button labelled by tip. The
// tooltip renders only inside a window or popup that has a tooltip layer.
func newIconButtonWithTooltip(icon fyne.Resource, tip string, tapped func()) *ttwidget.Button {
	btn := ttwidget.NewButtonWithIcon("", icon, tapped)
	btn.SetToolTip(tip)
	return btn
}

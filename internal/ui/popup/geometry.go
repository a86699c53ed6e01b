package popup

import "github.com/bnema/miniworld/internal/domain/entity"

// DefaultClientSize is the unscaled popup size used when the page did not
// ask for one.
var DefaultClientSize = entity.Size{Width: 800, Height: 600}

// ComputeGeometry resolves where a popup window goes. A requested size is
// used only when both dimensions are positive; otherwise defaultSize scaled
// by the UI scale applies. Without a requested position the window is
// centered on the requesting window.
func ComputeGeometry(features entity.WindowFeatures, defaultSize entity.Size, scale float64) entity.Geometry {
	if defaultSize.IsEmpty() {
		defaultSize = DefaultClientSize
	}

	g := entity.Geometry{ClientSize: defaultSize.Scale(scale)}
	if features.HasSize && features.Width > 0 && features.Height > 0 {
		g.ClientSize = entity.Size{Width: features.Width, Height: features.Height}
	}

	if features.HasPosition {
		g.Location = entity.Point{X: features.Left, Y: features.Top}
	} else {
		g.CenterOnParent = true
	}
	return g
}

package popup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/miniworld/internal/domain/entity"
)

func TestComputeGeometry(t *testing.T) {
	tests := []struct {
		name        string
		features    entity.WindowFeatures
		defaultSize entity.Size
		scale       float64
		want        entity.Geometry
	}{
		{
			name:  "unscaled default centered",
			scale: 1,
			want:  entity.Geometry{ClientSize: entity.Size{Width: 800, Height: 600}, CenterOnParent: true},
		},
		{
			name:  "hidpi default",
			scale: 2,
			want:  entity.Geometry{ClientSize: entity.Size{Width: 1600, Height: 1200}, CenterOnParent: true},
		},
		{
			name:     "requested size is not scaled",
			features: entity.WindowFeatures{HasSize: true, Width: 500, Height: 650},
			scale:    2,
			want:     entity.Geometry{ClientSize: entity.Size{Width: 500, Height: 650}, CenterOnParent: true},
		},
		{
			name:     "negative requested size ignored",
			features: entity.WindowFeatures{HasSize: true, Width: -5, Height: 400},
			scale:    1,
			want:     entity.Geometry{ClientSize: entity.Size{Width: 800, Height: 600}, CenterOnParent: true},
		},
		{
			name:     "position without size",
			features: entity.WindowFeatures{HasPosition: true, Left: -20, Top: 15},
			scale:    1,
			want:     entity.Geometry{ClientSize: entity.Size{Width: 800, Height: 600}, Location: entity.Point{X: -20, Y: 15}},
		},
		{
			name:        "custom default size",
			defaultSize: entity.Size{Width: 640, Height: 480},
			scale:       1.5,
			want:        entity.Geometry{ClientSize: entity.Size{Width: 960, Height: 720}, CenterOnParent: true},
		},
		{
			name:  "invalid scale leaves default unscaled",
			scale: 0,
			want:  entity.Geometry{ClientSize: entity.Size{Width: 800, Height: 600}, CenterOnParent: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeGeometry(tt.features, tt.defaultSize, tt.scale)
			assert.Equal(t, tt.want, got)
		})
	}
}

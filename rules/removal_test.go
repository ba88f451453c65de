package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldRemove(t *testing.T) {
	tests := []struct {
		name      string
		occupied  bool
		neighbors int
		threshold int
		want      bool
	}{
		{name: "occupied below threshold", occupied: true, neighbors: 3, threshold: 4, want: true},
		{name: "occupied at threshold survives", occupied: true, neighbors: 4, threshold: 4, want: false},
		{name: "occupied above threshold survives", occupied: true, neighbors: 8, threshold: 4, want: false},
		{name: "occupied isolated", occupied: true, neighbors: 0, threshold: 4, want: true},
		{name: "not occupied never removed", occupied: false, neighbors: 0, threshold: 4, want: false},
		{name: "threshold zero never removes", occupied: true, neighbors: 0, threshold: 0, want: false},
		{name: "threshold one removes isolated", occupied: true, neighbors: 0, threshold: 1, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldRemove(tt.occupied, tt.neighbors, tt.threshold))
		})
	}
}

func TestDefaultThreshold(t *testing.T) {
	assert.Equal(t, 4, DefaultThreshold)
}

package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputState_Intents(t *testing.T) {
	tests := []struct {
		name  string
		state InputState
		want  []Intent
	}{
		{"idle", InputState{}, []Intent{MoveIntent{}}},
		{"opposing keys cancel", InputState{Left: true, Right: true}, []Intent{MoveIntent{}}},
		{"diagonal", InputState{Right: true, Up: true}, []Intent{MoveIntent{AxisX: 1, AxisY: -1}}},
		{
			"edges follow movement",
			InputState{Down: true, MissilePressed: true, ToggleFirePressed: true},
			[]Intent{MoveIntent{AxisY: 1}, ToggleFireIntent{}, MissileIntent{}},
		},
		{
			"everything",
			InputState{
				Left:              true,
				ToggleFirePressed: true,
				BeamPressed:       true,
				MissilePressed:    true,
				PausePressed:      true,
				RestartPressed:    true,
			},
			[]Intent{MoveIntent{AxisX: -1}, ToggleFireIntent{}, BeamIntent{}, MissileIntent{}, PauseIntent{}, RestartIntent{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.Intents())
		})
	}
}

func TestIsEdge(t *testing.T) {
	assert.False(t, IsEdge(MoveIntent{AxisX: 1}))
	assert.True(t, IsEdge(ToggleFireIntent{}))
	assert.True(t, IsEdge(BeamIntent{}))
	assert.True(t, IsEdge(MissileIntent{}))
	assert.False(t, IsEdge(PauseIntent{}), "applied immediately")
	assert.False(t, IsEdge(RestartIntent{}), "applied immediately")
}

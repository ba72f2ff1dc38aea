package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/chickenrun/internal/domain/entity"
)

func TestPoseSystem_LongIdle(t *testing.T) {
	f := newFixture(createTestTuning())
	sys := NewPoseSystem(f.cfg)
	p := f.world.Player

	for i := 0; i < 40; i++ {
		sys.Update(p, InputState{}, 0)
	}
	assert.Equal(t, ms(2000), p.Idle)
	assert.Equal(t, entity.PoseIdle, p.Pose, "long idle needs more than 2s")

	sys.Update(p, InputState{}, 0)
	assert.Equal(t, entity.PoseLongIdle, p.Pose)

	sys.Update(p, InputState{Right: true}, 0)
	assert.Zero(t, p.Idle)
	assert.Equal(t, entity.PoseWalking, p.Pose)
}

func TestPoseSystem_Priorities(t *testing.T) {
	tests := []struct {
		name  string
		setup func(p *entity.Player)
		input InputState
		want  entity.Pose
	}{
		{"idle", func(p *entity.Player) {}, InputState{}, entity.PoseIdle},
		{"walking", func(p *entity.Player) {}, InputState{Left: true}, entity.PoseWalking},
		{"jumping", func(p *entity.Player) { p.Y = 100 }, InputState{Right: true}, entity.PoseJumping},
		{"hurt beats jumping", func(p *entity.Player) { p.Y = 100; p.Hit(0, 10, 0) }, InputState{}, entity.PoseHurt},
		{"dead beats everything", func(p *entity.Player) { p.Hit(0, 1000, 0) }, InputState{Right: true}, entity.PoseDead},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(createTestTuning())
			p := f.world.Player
			tt.setup(p)

			NewPoseSystem(f.cfg).Update(p, tt.input, ms(500))

			assert.Equal(t, tt.want, p.Pose)
		})
	}
}

func TestPoseSystem_HurtWearsOff(t *testing.T) {
	f := newFixture(createTestTuning())
	sys := NewPoseSystem(f.cfg)
	p := f.world.Player
	p.Hit(0, 10, 0)

	sys.Update(p, InputState{}, ms(999))
	assert.Equal(t, entity.PoseHurt, p.Pose)

	sys.Update(p, InputState{}, ms(1000))
	assert.Equal(t, entity.PoseIdle, p.Pose)
}

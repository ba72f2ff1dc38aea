package config

// Default returns the tuning the game ships with.
// tuning.json only needs to name the values it changes; map entries
// are merged over the default entry of the same name.
func Default() *Tuning {
	return &Tuning{
		Display: DisplayConfig{
			Title:        "Chicken Run",
			ScreenWidth:  720,
			ScreenHeight: 480,
			Scale:        1,
			Framerate:    60,
			CameraOffset: 100,
		},
		Loop: LoopConfig{
			TicksPerSecond: 60,
			MovesPerSecond: 60,
			GravityMs:      25,
			PoseMs:         50,
			AnimationMs:    200,
			BossStepMs:     30,
			BossPollMs:     120,
		},
		Physics: PhysicsSettings{
			Gravity:     2,
			JumpImpulse: 30,
			GroundY:     150,
		},
		Player: PlayerConfig{
			Shape:        ShapeConfig{Width: 100, Height: 275, Offset: InsetsConfig{Top: 60, Right: 20, Bottom: 30, Left: 20}},
			Energy:       100,
			Speed:        6,
			LongIdleMs:   2000,
			DeathDelayMs: 1000,
		},
		Enemies: map[string]EnemyConfig{
			"chicken": {
				Shape:          ShapeConfig{Width: 70, Height: 80, Offset: InsetsConfig{Top: 5, Right: 5, Bottom: 5, Left: 5}},
				Y:              350,
				SpeedMin:       0.25,
				SpeedRange:     0.35,
				RemovalDelayMs: 500,
			},
			"chick": {
				Shape:          ShapeConfig{Width: 60, Height: 60, Offset: InsetsConfig{Top: 5, Right: 5, Bottom: 5, Left: 5}},
				Y:              350,
				SpeedMin:       0.4,
				SpeedRange:     0.6,
				RemovalDelayMs: 500,
			},
		},
		Projectile: ProjectileConfig{
			Shape:          ShapeConfig{Width: 65, Height: 80, Offset: InsetsConfig{Top: 10, Right: 10, Bottom: 20, Left: 10}},
			SpawnOffsetX:   100,
			SpawnOffsetY:   100,
			SpeedX:         5,
			LaunchSpeedY:   15,
			CooldownMs:     650,
			RemovalDelayMs: 1000,
			FloorY:         350,
			KillY:          1000,
		},
		Pickups: map[string]PickupConfig{
			"coin":   {Shape: ShapeConfig{Width: 120, Height: 120, Offset: InsetsConfig{Top: 45, Right: 45, Bottom: 35, Left: 45}}},
			"bottle": {Shape: ShapeConfig{Width: 60, Height: 80, Offset: InsetsConfig{Top: 5, Right: 5, Bottom: 5, Left: 5}}},
		},
		Combat: CombatConfig{
			HitCooldownMs:  250,
			HurtWindowMs:   1000,
			ContactDamage:  10,
			StompTolerance: 40,
			StompRadiusX:   100,
			StompRadiusY:   80,
			PickupBuffer:   20,
			MaxBottles:     10,
			MaxCoins:       20,
		},
		Boss: BossConfig{
			Shape:        ShapeConfig{Width: 250, Height: 400, Offset: InsetsConfig{Top: 60, Right: 20, Bottom: 90, Left: 20}},
			Energy:       300,
			DamagePerHit: 30,
			Activation: ActivationConfig{
				AlertX:              4500,
				EarlyContactX:       4000,
				EarlyContactDelayMs: 2000,
				Alert:               AnimationConfig{Frames: 8, FrameMs: 275, SettleMs: 1000},
			},
			Aggression: AggressionConfig{MidEnergy: 80, HighEnergy: 40},
			Walk: WalkConfig{
				BaseSpeed:          40,
				SpeedPerAggression: 15,
				NearDistance:       700,
				NearBonus:          25,
				WoundedEnergy:      60,
				WoundedBonus:       20,
				CriticalEnergy:     30,
				CriticalBonus:      25,
			},
			Attack: AttackConfig{
				BaseRange:               550,
				RangePerAggression:      100,
				CooldownMs:              400,
				CooldownPerAggressionMs: 100,
				MinCooldownMs:           200,
				Frames:                  8,
				FrameMs:                 120,
				FramePerAggressionMs:    20,
				MinFrameMs:              80,
				RecoverySpeed:           15,
				RecoveryPerAggression:   3,
				RecoveryMs:              400,
			},
			Jump: JumpConfig{
				MinDistance:          100,
				MaxDistance:          600,
				CooldownMs:           2000,
				ChancePerAggression:  0.005,
				Impulse:              25,
				ImpulsePerAggression: 3,
				Speed:                12,
				SpeedPerAggression:   3,
				Gravity:              2.5,
				TimeoutMs:            1000,
			},
			Hurt:  AnimationConfig{Frames: 3, FrameMs: 150, SettleMs: 100},
			Death: AnimationConfig{Frames: 3, FrameMs: 250, SettleMs: 1000},
		},
		Sounds: map[string]float64{
			"coin":           0.5,
			"bottle_collect": 0.6,
			"bottle_throw":   0.8,
			"bottle_shatter": 0.5,
			"chicken_hurt":   0.8,
			"hurt":           0.5,
			"player_dead":    0.6,
			"boss_alert":     0.4,
			"boss_hurt":      0.5,
			"boss_dead":      0.7,
		},
	}
}

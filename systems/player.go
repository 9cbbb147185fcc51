package systems

import (
	"github.com/automoto/starpuff/components"
	cfg "github.com/automoto/starpuff/config"
	"github.com/automoto/starpuff/systems/factory"
	"github.com/automoto/starpuff/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Outcome is the result of the player touching an enemy
type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeCaptured
	OutcomeDamaged
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCaptured:
		return "captured"
	case OutcomeDamaged:
		return "damaged"
	}
	return "ignored"
}

func UpdatePlayer(ecs *ecs.ECS) {
	var players []*donburi.Entry
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		players = append(players, e)
	})

	input := InputOf(ecs)
	for _, e := range players {
		updateSinglePlayer(ecs, e, input)
	}
}

func updateSinglePlayer(ecs *ecs.ECS, playerEntry *donburi.Entry, input *components.InputData) {
	if !playerEntry.Valid() {
		return
	}
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	if physics.Grounded() {
		player.JumpsLeft = cfg.Player.MaxJumps
	}

	if input == nil {
		return
	}

	if input.Pressed(cfg.ActionMoveLeft) {
		HandleMoveInput(playerEntry, components.DirectionLeft)
	}
	if input.Pressed(cfg.ActionMoveRight) {
		HandleMoveInput(playerEntry, components.DirectionRight)
	}
	if input.JustPressed(cfg.ActionJump) {
		HandleJumpInput(playerEntry)
	}

	switch {
	case input.Pressed(cfg.ActionInhale):
		OnAbilityKeyDown(ecs, playerEntry)
	case input.JustReleased(cfg.ActionInhale):
		OnAbilityKeyUp(ecs, playerEntry)
	}
}

// HandleMoveInput adds one tick of walking in dir and turns the player to face it
func HandleMoveInput(playerEntry *donburi.Entry, dir components.Direction) {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	anim := components.Animation.Get(playerEntry)

	physics.MoveX += dir.Sign() * cfg.Player.Speed
	player.Direction = dir
	anim.FlipX = dir == components.DirectionLeft
}

// HandleJumpInput jumps from the ground or spends one air jump.
// It reports whether a jump happened.
func HandleJumpInput(playerEntry *donburi.Entry) bool {
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	switch {
	case physics.Grounded():
		player.JumpsLeft = cfg.Player.MaxJumps - 1
	case player.JumpsLeft > 0:
		player.JumpsLeft--
	default:
		return false
	}

	physics.SpeedY = -cfg.Player.JumpForce
	physics.OnGround = nil
	return true
}

// OnAbilityKeyDown runs every tick the inhale key is held
func OnAbilityKeyDown(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	anim := components.Animation.Get(playerEntry)

	if player.IsFull {
		anim.Play(cfg.ClipPlayerFull)
		setInhaleEffectVisible(ecs.World, player, false)
		return
	}

	player.IsInhaling = true
	anim.Play(cfg.ClipPlayerInhaling)
	setInhaleEffectVisible(ecs.World, player, true)
}

func OnAbilityKeyUp(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	if player.IsFull {
		ReleaseAbility(ecs, playerEntry)
		return
	}

	player.IsInhaling = false
	setInhaleEffectVisible(ecs.World, player, false)
	components.Animation.Get(playerEntry).Play(cfg.ClipPlayerIdle)
}

// ReleaseAbility spits the swallowed enemy out as a star in the facing direction
func ReleaseAbility(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	player := components.Player.Get(playerEntry)
	components.Animation.Get(playerEntry).Play(cfg.ClipPlayerInhaling)

	x, y := playerOrigin(playerEntry)
	dir := player.Direction
	factory.CreateProjectile(ecs,
		x+dir.Sign()*cfg.Player.ProjectileOffsetX,
		y+cfg.Player.ProjectileOffsetY,
		dir,
	)
	player.IsFull = false

	After(playerEntry, cfg.Seconds(cfg.Player.IdleRestoreDelay), func(owner *donburi.Entry) {
		p := components.Player.Get(owner)
		if p.IsInhaling || p.IsFull {
			return
		}
		components.Animation.Get(owner).Play(cfg.ClipPlayerIdle)
	})
}

// OnEnemyCollision resolves a touch between the player and an enemy.
// An inhaling player swallows an inhalable enemy; otherwise the player is hurt
// unless it is still blinking from the last hit.
func OnEnemyCollision(ecs *ecs.ECS, playerEntry, enemyEntry *donburi.Entry) Outcome {
	if playerEntry == nil || !playerEntry.Valid() || enemyEntry == nil || !enemyEntry.Valid() {
		return OutcomeIgnored
	}
	player := components.Player.Get(playerEntry)

	if player.IsInhaling {
		if inhalable, ok := components.InhalableOf(enemyEntry); ok && inhalable.IsInhalable() {
			Destroy(ecs.World, enemyEntry)
			player.IsInhaling = false
			player.IsFull = true
			setInhaleEffectVisible(ecs.World, player, false)
			components.Animation.Get(playerEntry).Play(cfg.ClipPlayerFull)
			return OutcomeCaptured
		}
	}

	if components.Blink.Get(playerEntry).Active() {
		return OutcomeIgnored
	}

	health := components.Health.Get(playerEntry)
	health.Damage(1)
	if health.Depleted() {
		killPlayer(ecs, playerEntry, CauseDamage)
		return OutcomeDamaged
	}
	startBlink(playerEntry)
	return OutcomeDamaged
}

func OnExitCollision(ecs *ecs.ECS, playerEntry *donburi.Entry) {
	if playerEntry == nil || !playerEntry.Valid() {
		return
	}
	LevelExit.Publish(ecs.World, LevelExitEvent{})
}

// UpdatePlayerFrame moves the inhale zone and effect with the player and
// kills a player that fell below the level.
func UpdatePlayerFrame(ecs *ecs.ECS) {
	var players []*donburi.Entry
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		players = append(players, e)
	})

	fallThreshold := levelTuning(ecs).FallThreshold

	for _, e := range players {
		player := components.Player.Get(e)
		x, y := playerOrigin(e)

		if zone := entryOf(ecs.World, player.InhaleZone); zone != nil {
			offsetX := cfg.Inhale.OffsetRightX
			if player.Direction == components.DirectionLeft {
				offsetX = cfg.Inhale.OffsetLeftX
			}
			obj := components.Object.Get(zone)
			obj.X = x + cfg.World(offsetX)
			obj.Y = y + cfg.World(cfg.Inhale.OffsetY)
			obj.Update()
		}

		if effect := entryOf(ecs.World, player.InhaleEffect); effect != nil {
			data := components.InhaleEffect.Get(effect)
			data.X = x + player.Direction.Sign()*cfg.Player.InhaleEffectOffset
			data.Y = y
			components.Animation.Get(effect).FlipX = player.Direction == components.DirectionLeft
		}
		setInhaleEffectVisible(ecs.World, player, player.IsInhaling)

		if fallThreshold > 0 && y > fallThreshold {
			killPlayer(ecs, e, CauseFall)
		}
	}
}

// UpdateInhalePull drags every inhalable enemy toward an inhaling player's mouth
func UpdateInhalePull(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		if !player.IsInhaling {
			return
		}
		pull := -player.Direction.Sign() * cfg.Inhale.PullSpeed

		tags.Enemy.Each(ecs.World, func(enemy *donburi.Entry) {
			inhalable, ok := components.InhalableOf(enemy)
			if !ok || !inhalable.IsInhalable() {
				return
			}
			components.Physics.Get(enemy).MoveX += pull
		})
	})
}

func setInhaleEffectVisible(w donburi.World, player *components.PlayerData, visible bool) {
	effect := entryOf(w, player.InhaleEffect)
	if effect == nil {
		return
	}
	opacity := components.Opacity.Get(effect)
	if visible {
		opacity.Value = 1
	} else {
		opacity.Value = 0
	}
}

// playerOrigin returns the sprite origin the hit-box was placed from
func playerOrigin(e *donburi.Entry) (float64, float64) {
	obj := components.Object.Get(e)
	return cfg.Player.Hitbox.Origin(obj.X, obj.Y)
}

func levelTuning(ecs *ecs.ECS) cfg.LevelTuning {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return cfg.LevelTuning{}
	}
	return components.Level.Get(entry).Tuning
}

package systems

import (
	"fmt"

	"github.com/automoto/starpuff/components"
	"github.com/automoto/starpuff/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DeathCause says why the player died
type DeathCause int

const (
	CauseDamage DeathCause = iota
	CauseFall
)

func (c DeathCause) String() string {
	if c == CauseFall {
		return "fall"
	}
	return "damage"
}

type PlayerDiedEvent struct {
	Cause DeathCause
}

type LevelExitEvent struct{}

// Phase says whether an overlap started or ended this tick
type Phase int

const (
	PhaseBegin Phase = iota
	PhaseEnd
)

func (p Phase) String() string {
	if p == PhaseEnd {
		return "end"
	}
	return "begin"
}

// CollisionEvent is produced once per overlap change between two categories
type CollisionEvent struct {
	Phase      Phase
	A, B       donburi.Entity
	CatA, CatB tags.Category
}

func (e CollisionEvent) String() string {
	return fmt.Sprintf("%s %s x %s", e.Phase, e.CatA, e.CatB)
}

var (
	PlayerDied = events.NewEventType[PlayerDiedEvent]()
	LevelExit  = events.NewEventType[LevelExitEvent]()
	Collision  = events.NewEventType[CollisionEvent]()
)

// LogCollision records collision events for the debug overlay
func LogCollision(w donburi.World, e CollisionEvent) {
	entry, ok := components.EventLog.First(w)
	if !ok {
		return
	}
	components.EventLog.Get(entry).Push(e.String())
}

package sim

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventEnemyKilled EventKind = iota
	EventStageAdvanced
	EventBuoySpawned
	EventRelicCollected
	EventPlayerDamaged
	EventPulseFired
	EventSpecialStrike
	EventGameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventEnemyKilled:
		return "enemy_killed"
	case EventStageAdvanced:
		return "stage_advanced"
	case EventBuoySpawned:
		return "buoy_spawned"
	case EventRelicCollected:
		return "relic_collected"
	case EventPlayerDamaged:
		return "player_damaged"
	case EventPulseFired:
		return "pulse_fired"
	case EventSpecialStrike:
		return "special_strike"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a single occurrence within a tick, carried on the Frame so the
// view layer can react (popups, flashes) without reaching into the sim.
type Event struct {
	Kind EventKind
	X, Y float64
	// Value depends on the kind: score reward for kills, remaining health
	// for damage, new stage number, struck count, relic stock.
	Value int
}

func (g *Game) emit(ev Event) {
	g.events = append(g.events, ev)
}

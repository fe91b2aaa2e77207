package component

// DeathPolicy selects the one-shot transform applied when a fighter dies.
type DeathPolicy uint8

const (
	PlayerDeath DeathPolicy = iota
	MonsterDeath
)

func (p DeathPolicy) String() string {
	switch p {
	case PlayerDeath:
		return "player"
	case MonsterDeath:
		return "monster"
	}
	return "unknown"
}

// Fighter is the optional combat capability.
// HP may drop below zero until the death transform runs.
type Fighter struct {
	MaxHP   int
	HP      int
	Defense int
	Power   int
	OnDeath DeathPolicy
}

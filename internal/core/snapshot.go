package core

// EntityKind classifies a pooled entity.
type EntityKind int

const (
	KindObstacle EntityKind = iota
	KindCollectible
)

func (k EntityKind) String() string {
	if k == KindCollectible {
		return "collectible"
	}
	return "obstacle"
}

// PlayerPose is the renderer-facing view of the player.
type PlayerPose struct {
	Lane     int     `msgpack:"lane"`
	Target   float64 `msgpack:"target"`  // lateral target (lane offset or angle)
	Lateral  float64 `msgpack:"lateral"` // smoothed lateral position
	Vertical float64 `msgpack:"vertical"`
	Airborne bool    `msgpack:"airborne"`
	Speed    float64 `msgpack:"speed"`
}

// EntityPose is the renderer-facing view of one pool entity.
type EntityPose struct {
	ID      int        `msgpack:"id"`
	Lateral float64    `msgpack:"lateral"`
	Depth   float64    `msgpack:"depth"`
	Kind    EntityKind `msgpack:"kind"`
	Visible bool       `msgpack:"visible"`
}

// BlockPose is one tower block or debris fragment.
type BlockPose struct {
	X     float64 `msgpack:"x"`
	Z     float64 `msgpack:"z"`
	W     float64 `msgpack:"w"`
	D     float64 `msgpack:"d"`
	Level int     `msgpack:"level"` // stack height index
	Drop  float64 `msgpack:"drop"`  // how far a debris fragment has fallen
	Hue   int     `msgpack:"hue"`
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
// It never aliases live simulation state.
type Snapshot struct {
	Game      string       `msgpack:"game"`
	Frame     uint64       `msgpack:"frame"`
	Phase     Phase        `msgpack:"phase"`
	Score     int          `msgpack:"score"`
	HighScore int          `msgpack:"high"`
	Speed     float64      `msgpack:"speed"`
	Player    PlayerPose   `msgpack:"player"`
	Entities  []EntityPose `msgpack:"entities,omitempty"`
	Blocks    []BlockPose  `msgpack:"blocks,omitempty"`
	Active    *BlockPose   `msgpack:"active,omitempty"`
	Debris    []BlockPose  `msgpack:"debris,omitempty"`
	Axis      string       `msgpack:"axis,omitempty"`
}

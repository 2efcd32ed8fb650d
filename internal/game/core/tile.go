package core

// GroundKind is the terrain layer of a tile.
// Ground never changes after load; only content moves around.
type GroundKind int

const (
	GroundGrass GroundKind = iota
	GroundWater
	GroundPath
)

// ContentKind is the occupant layer of a tile. Every occupant owns its
// cell exclusively; exactly one Player and one Goal exist per level.
type ContentKind int

const (
	ContentEmpty ContentKind = iota
	ContentPlayer
	ContentEnemy
	ContentTower
	ContentRock
	ContentGoal
)

// Tile is one grid cell: a (ground, content) pair. PathDist is the
// distance to the goal along the path network, baked at load time by
// ComputePathDistances; -1 means "not on a route to the goal".
type Tile struct {
	Ground   GroundKind
	Content  ContentKind
	PathDist int
}

// Ground codes of the level text format (first character of a tile code).
const (
	codeGrass = 'O'
	codeWater = 'x'
	codePath  = '|'
)

// Content codes (second character of a tile code).
const (
	codeEmpty  = '-'
	codePlayer = 'p'
	codeEnemy  = 'e'
	codeTower  = 't'
	codeRock   = 'r'
	codeGoal   = 'g'
)

// ParseGroundCode decodes the first character of a two-character tile code.
func ParseGroundCode(c byte) (GroundKind, error) {
	switch c {
	case codeGrass:
		return GroundGrass, nil
	case codeWater:
		return GroundWater, nil
	case codePath:
		return GroundPath, nil
	default:
		return 0, ErrInvalidGroundCode
	}
}

// ParseContentCode decodes the second character of a two-character tile code.
func ParseContentCode(c byte) (ContentKind, error) {
	switch c {
	case codeEmpty:
		return ContentEmpty, nil
	case codePlayer:
		return ContentPlayer, nil
	case codeEnemy:
		return ContentEnemy, nil
	case codeTower:
		return ContentTower, nil
	case codeRock:
		return ContentRock, nil
	case codeGoal:
		return ContentGoal, nil
	default:
		return 0, ErrInvalidContentCode
	}
}

// ParseTileCode decodes a full two-character tile code.
func ParseTileCode(ground, content byte) (Tile, error) {
	g, err := ParseGroundCode(ground)
	if err != nil {
		return Tile{}, err
	}
	c, err := ParseContentCode(content)
	if err != nil {
		return Tile{}, err
	}
	return Tile{Ground: g, Content: c, PathDist: -1}, nil
}

// GroundCode returns the text-format character for the ground layer.
func (g GroundKind) GroundCode() byte {
	switch g {
	case GroundWater:
		return codeWater
	case GroundPath:
		return codePath
	default:
		return codeGrass
	}
}

// ContentCode returns the text-format character for the content layer.
func (c ContentKind) ContentCode() byte {
	switch c {
	case ContentPlayer:
		return codePlayer
	case ContentEnemy:
		return codeEnemy
	case ContentTower:
		return codeTower
	case ContentRock:
		return codeRock
	case ContentGoal:
		return codeGoal
	default:
		return codeEmpty
	}
}

func (g GroundKind) String() string {
	switch g {
	case GroundGrass:
		return "Grass"
	case GroundWater:
		return "Water"
	case GroundPath:
		return "Path"
	default:
		return "Unknown"
	}
}

func (c ContentKind) String() string {
	switch c {
	case ContentEmpty:
		return "Empty"
	case ContentPlayer:
		return "Player"
	case ContentEnemy:
		return "Enemy"
	case ContentTower:
		return "Tower"
	case ContentRock:
		return "Rock"
	case ContentGoal:
		return "Goal"
	default:
		return "Unknown"
	}
}

func (t Tile) IsEmpty() bool  { return t.Content == ContentEmpty }
func (t Tile) IsWater() bool  { return t.Ground == GroundWater }
func (t Tile) IsPath() bool   { return t.Ground == GroundPath }
func (t Tile) HasEnemy() bool { return t.Content == ContentEnemy }
func (t Tile) HasGoal() bool  { return t.Content == ContentGoal }

// IsWalkableBy reports whether the given actor kind may step onto this
// tile. Any occupied cell is off limits regardless of ground. The player
// walks dry land (grass or path); enemies keep to the path network.
func (t Tile) IsWalkableBy(actor ContentKind) bool {
	if t.Content != ContentEmpty {
		return false
	}
	switch actor {
	case ContentPlayer:
		return t.Ground == GroundGrass || t.Ground == GroundPath
	case ContentEnemy:
		return t.Ground == GroundPath
	default:
		return false
	}
}

// BlocksLineOfFire reports whether a shot scanning across this tile halts
// here without effect. Rocks and the goal absorb shots; ground alone
// (water included) never obstructs a shot.
func (t Tile) BlocksLineOfFire() bool {
	return t.Content == ContentRock || t.Content == ContentGoal
}

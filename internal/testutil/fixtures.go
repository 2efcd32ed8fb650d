package testutil

// Level text fixtures shared by parser, engine and rules tests. The
// text form mirrors authored level files: two characters per tile,
// ground then content.

// CorridorLevel is a 5x2 map: a straight path along the top row with
// the enemy on the far left and the goal on the far right, and a grass
// row beneath for the player. Every mechanic is reachable in a few
// turns.
const CorridorLevel = `|e|-|-|-|g
O-O-O-OpO-
`

// OpenFieldLevel is a 5x4 map with a bending path, one enemy and room
// to place towers.
const OpenFieldLevel = `O-O-O-O-O-
|e|-|-|-O-
O-O-O-|-O-
O-OpO-|gO-
`

// NoEnemyLevel has a path and a goal but nothing to fight.
const NoEnemyLevel = `|-|-|g
O-OpO-
`

// WaterPocketLevel surrounds the player with one water tile for
// placement and movement rejection cases.
const WaterPocketLevel = `O-x-O-
|-OpO-
|e|-|g
`

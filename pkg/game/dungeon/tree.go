package dungeon

import (
	"dungeongen/pkg/game/entities"
)

// Half the maximum room size plus this margin is the smallest partition side
const partitionMargin = 2

// partition is a node of the binary space partition built by Tree mode
type partition struct {
	x, y, width, height int
	left, right         *partition

	// Index of the room placed in this leaf, -1 when there is none
	roomID int
}

func newPartition(x, y, width, height int) *partition {
	return &partition{x: x, y: y, width: width, height: height, roomID: -1}
}

func (p *partition) isLeaf() bool {
	return p.left == nil && p.right == nil
}

// treePlacer splits the area until there is one leaf per requested room,
// puts a room inside each leaf and joins the two halves of every split.
// Rooms never touch because each one ends at least a tile before its leaf.
type treePlacer struct{}

// Name returns the name of this placer
func (t *treePlacer) Name() string {
	return "Tree"
}

func (t *treePlacer) placeRooms(d *Dungeon, p placement) {
	minWidth := p.maxRoomWidth/2 + partitionMargin
	minHeight := p.maxRoomHeight/2 + partitionMargin

	// Leave one tile of border on every side
	root := newPartition(1, 1, p.width-2, p.height-2)

	// Split breadth first so leaves stay roughly the same size
	leaves := 1
	queue := []*partition{root}
	for len(queue) > 0 && leaves < p.maxRooms {
		node := queue[0]
		queue = queue[1:]

		if !splitPartition(d, node, minWidth, minHeight) {
			continue
		}
		leaves++
		queue = append(queue, node.left, node.right)
	}

	placeInLeaves(d, root, p)
	d.partition = root
}

func (t *treePlacer) connect(d *Dungeon, first int) {
	if d.partition != nil {
		joinPartitions(d, d.partition)
	}
}

// splitPartition cuts node in two along its longer side. It returns false
// when neither side is long enough for two partitions.
func splitPartition(d *Dungeon, node *partition, minWidth, minHeight int) bool {
	canCutX := node.width >= minWidth*2
	canCutY := node.height >= minHeight*2

	var cutX bool
	switch {
	case canCutX && canCutY:
		if node.width == node.height {
			cutX = d.rng.Range(0, 2) == 0
		} else {
			cutX = node.width > node.height
		}
	case canCutX:
		cutX = true
	case canCutY:
		cutX = false
	default:
		return false
	}

	if cutX {
		at := minWidth + d.rng.Range(0, node.width-minWidth*2+1)
		node.left = newPartition(node.x, node.y, at, node.height)
		node.right = newPartition(node.x+at, node.y, node.width-at, node.height)
	} else {
		at := minHeight + d.rng.Range(0, node.height-minHeight*2+1)
		node.left = newPartition(node.x, node.y, node.width, at)
		node.right = newPartition(node.x, node.y+at, node.width, node.height-at)
	}

	return true
}

// placeInLeaves adds one room per leaf, left subtree first
func placeInLeaves(d *Dungeon, node *partition, p placement) {
	if !node.isLeaf() {
		placeInLeaves(d, node.left, p)
		placeInLeaves(d, node.right, p)
		return
	}

	w := d.rng.Range(minRoomSize, min(p.maxRoomWidth, node.width))
	h := d.rng.Range(minRoomSize, min(p.maxRoomHeight, node.height))
	x := node.x + d.rng.Range(0, node.width-w)
	y := node.y + d.rng.Range(0, node.height-h)

	// Only an earlier batch of rooms can get in the way
	room := entities.NewRoom(len(d.rooms), x, y, w, h)
	if d.intersectsAnotherRoom(room) {
		return
	}

	node.roomID = room.ID
	d.rooms = append(d.rooms, room)
}

// joinPartitions adds a corridor between a room on each side of every split
func joinPartitions(d *Dungeon, node *partition) {
	if node.isLeaf() {
		return
	}

	from, okFrom := pickRoom(d, node.left)
	to, okTo := pickRoom(d, node.right)
	if okFrom && okTo {
		d.addCorridor(from, to)
	}

	joinPartitions(d, node.left)
	joinPartitions(d, node.right)
}

// pickRoom returns a room from the subtree, choosing a side at random when
// both have one
func pickRoom(d *Dungeon, node *partition) (int, bool) {
	if node.isLeaf() {
		return node.roomID, node.roomID >= 0
	}

	left, okLeft := pickRoom(d, node.left)
	right, okRight := pickRoom(d, node.right)

	switch {
	case okLeft && okRight:
		if d.rng.Range(0, 2) == 0 {
			return left, true
		}
		return right, true
	case okLeft:
		return left, true
	default:
		return right, okRight
	}
}

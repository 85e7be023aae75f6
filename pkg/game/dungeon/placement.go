package dungeon

import (
	"github.com/zyedidia/generic/mapset"

	"dungeongen/pkg/game/entities"
)

// Constants for room placement
const (
	placementAttempts = 10 // Tries per room slot before the slot is skipped
	spaceBetweenRooms = 3  // Margin used by SeparateRooms when testing for overlap
	minRoomSize       = 2
)

// scatterPlacer drops randomly sized rooms at random positions.
// A non-zero spacing grows the box tested for overlap up and to the left, while the
// committed room keeps its sampled geometry.
type scatterPlacer struct {
	name      string
	spacing   int
	connector func(d *Dungeon, first int)
}

// Name returns the name of this placer
func (s *scatterPlacer) Name() string {
	return s.name
}

func (s *scatterPlacer) placeRooms(d *Dungeon, p placement) {
	for slot := 0; slot < p.maxRooms; slot++ {
		for attempt := 0; attempt < placementAttempts; attempt++ {
			x := d.rng.Range(1, p.width-p.maxRoomWidth-1)
			y := d.rng.Range(1, p.height-p.maxRoomHeight-1)
			w := d.rng.Range(minRoomSize, p.maxRoomWidth)
			h := d.rng.Range(minRoomSize, p.maxRoomHeight)

			room := entities.NewRoom(len(d.rooms), x, y, w, h)
			tested := room
			if s.spacing > 0 && x-s.spacing >= 0 && y-s.spacing >= 0 {
				tested = entities.NewRoom(room.ID, x-s.spacing, y-s.spacing, w+s.spacing, h+s.spacing)
			}

			if !d.intersectsAnotherRoom(tested) {
				d.rooms = append(d.rooms, room)
				break
			}
		}
	}
}

func (s *scatterPlacer) connect(d *Dungeon, first int) {
	s.connector(d, first)
}

// gridCell is a coarse grid coordinate
type gridCell struct {
	row, col int
}

// gridPlacer puts one room in each of a random set of coarse grid cells.
// The outermost row and column of cells are never used.
type gridPlacer struct{}

// Name returns the name of this placer
func (g *gridPlacer) Name() string {
	return "Grid"
}

func (g *gridPlacer) placeRooms(d *Dungeon, p placement) {
	rows := p.height / p.maxRoomHeight
	cols := p.width / p.maxRoomWidth

	// Cells are sampled from [1, n-1) on each axis
	if rows < 3 || cols < 3 {
		return
	}

	chosen := mapset.New[gridCell]()
	for slot := 0; slot < p.maxRooms; slot++ {
		for attempt := 0; attempt < placementAttempts; attempt++ {
			cell := gridCell{
				row: d.rng.Range(1, rows-1),
				col: d.rng.Range(1, cols-1),
			}
			if !chosen.Has(cell) {
				chosen.Put(cell)
				break
			}
		}
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if !chosen.Has(gridCell{row, col}) {
				continue
			}
			room := entities.NewRoom(len(d.rooms),
				col*p.maxRoomWidth, row*p.maxRoomHeight,
				p.maxRoomWidth-1, p.maxRoomHeight-1)

			// Only an earlier batch of rooms can get in the way
			if d.intersectsAnotherRoom(room) {
				continue
			}
			d.rooms = append(d.rooms, room)
		}
	}
}

func (g *gridPlacer) connect(d *Dungeon, first int) {
	connectInOrder(d, first)
}

// connectRandomly gives every room one corridor to a random other room.
// Parallel and duplicate corridors are possible.
func connectRandomly(d *Dungeon, first int) {
	n := len(d.rooms) - first
	if n < 2 {
		return
	}

	for i := first; i < len(d.rooms); i++ {
		from := d.rooms[i].ID
		to := from
		for to == from {
			to = d.rooms[first+d.rng.Range(0, n)].ID
		}
		d.addCorridor(from, to)
	}
}

// connectInOrder joins each room to the next one created, forming a path
func connectInOrder(d *Dungeon, first int) {
	for i := first; i < len(d.rooms)-1; i++ {
		d.addCorridor(d.rooms[i].ID, d.rooms[i+1].ID)
	}
}

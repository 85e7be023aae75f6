package dungeon

import "dungeongen/pkg/game/entities"

// Door placement odds, in percent
const (
	doorCreationChance     = 75
	doorsOnBothSidesChance = 40
	doorOpenThreshold      = 50 // A door is open when a roll in [0, 100) exceeds this
)

// DoorOptions tunes door population
type DoorOptions struct {
	// LockChance is the percent chance that a placed door is locked.
	// Zero never locks and draws no extra random numbers.
	LockChance int
}

// SetDoorOptions replaces the door options used by AddDoors
func (d *Dungeon) SetDoorOptions(opts DoorOptions) {
	d.doorOpts = opts
}

// AddDoors puts doors on corridor ends. Every corridor gets a door with 75%
// probability; a corridor with a door gets a second one on its other end with
// 40% probability.
//
// Per corridor the draws are: placement roll, open roll, second-door roll. The
// first door goes on the to-room end and takes the lower id; the second goes on
// the from-room end, always closed.
func (d *Dungeon) AddDoors() error {
	if len(d.rooms) == 1 {
		return ErrSingleRoomLayout
	}

	for i := range d.corridors {
		c := &d.corridors[i]

		if d.rng.RangeInclusive(1, 100) > doorCreationChance {
			continue
		}

		first := entities.NewDoor(d.nextDoorID)
		first.Open = d.rng.Range(0, 100) > doorOpenThreshold
		d.maybeLock(first)

		if d.rng.RangeInclusive(1, 100) <= doorsOnBothSidesChance {
			d.nextDoorID++
			second := entities.NewDoor(d.nextDoorID)
			d.maybeLock(second)
			c.FromRoomDoor = second
		}

		d.nextDoorID++
		c.ToRoomDoor = first
	}

	return nil
}

func (d *Dungeon) maybeLock(door *entities.Door) {
	if d.doorOpts.LockChance <= 0 {
		return
	}
	if d.rng.RangeInclusive(1, 100) <= d.doorOpts.LockChance {
		door.Locked = true
		door.Open = false
	}
}

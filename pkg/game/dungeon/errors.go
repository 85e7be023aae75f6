package dungeon

import "errors"

// Validation failures. They are detected before any state changes.
var (
	ErrInvalidRoomCount       = errors.New("rooms number must not be zero")
	ErrRoomTooLargeForDungeon = errors.New("room size mismatch dungeon size")
	ErrRoomTooSmall           = errors.New("room size too small (less than three)")
	ErrSingleRoomLayout       = errors.New("there's only one room in the dungeon, no door is needed")
	ErrUnknownMode            = errors.New("unknown dungeon mode")
)

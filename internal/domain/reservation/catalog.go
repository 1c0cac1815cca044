package reservation

import (
	"fmt"
	"sort"

	"github.com/example/hotel-reservations/internal/internaltypes"
)

// Catalog is the fixed set of rooms for a run, keyed by room number.
type Catalog struct {
	rooms map[int]*Room
}

func NewCatalog(rooms []*Room) (*Catalog, error) {
	if len(rooms) == 0 {
		return nil, fmt.Errorf("%w: catalog is empty", internaltypes.ErrInvalidRoom)
	}
	c := &Catalog{rooms: make(map[int]*Room, len(rooms))}
	for _, r := range rooms {
		if r == nil {
			return nil, fmt.Errorf("%w: nil room in catalog", internaltypes.ErrInvalidRoom)
		}
		if _, dup := c.rooms[r.Number()]; dup {
			return nil, fmt.Errorf("%w: duplicate room number %d", internaltypes.ErrInvalidRoom, r.Number())
		}
		c.rooms[r.Number()] = r
	}
	return c, nil
}

func (c *Catalog) Room(number int) (*Room, bool) {
	r, ok := c.rooms[number]
	return r, ok
}

// Rooms returns all rooms ordered by number.
func (c *Catalog) Rooms() []*Room {
	out := make([]*Room, 0, len(c.rooms))
	for _, r := range c.rooms {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number() < out[j].Number() })
	return out
}

func (c *Catalog) Len() int { return len(c.rooms) }

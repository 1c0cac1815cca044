// Package catalog provides the built-in room catalog.
package catalog

import "github.com/example/hotel-reservations/internal/domain/reservation"

// Entry describes one room before it is turned into a domain Room.
type Entry struct {
	Number             int
	Type               string
	PricePerNightCents int64
}

var defaultEntries = []Entry{
	{101, "Luxury", 25000},
	{102, "Deluxe", 18000},
	{103, "Standard", 12000},
	{201, "Luxury", 26000},
	{202, "Deluxe", 19000},
	{203, "Standard", 13000},
}

// Default returns the six-room catalog the hotel ships with.
func Default() []Entry {
	out := make([]Entry, len(defaultEntries))
	copy(out, defaultEntries)
	return out
}

// Build turns entries into a Catalog.
func Build(entries []Entry) (*reservation.Catalog, error) {
	rooms := make([]*reservation.Room, 0, len(entries))
	for _, e := range entries {
		r, err := reservation.NewRoom(e.Number, e.Type, e.PricePerNightCents)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, r)
	}
	return reservation.NewCatalog(rooms)
}

package catalog

import "errors"

var ErrRoomNotFound = errors.New("room type not offered by listing")

// RoomOption is one bookable room category of a listing. Instances are
// read-only snapshots of upstream catalog data.
type RoomOption struct {
	Type             RoomType
	Name             string
	NightlyRateCents int64
	Size             string
	View             string
	Features         []string
}

type Listing struct {
	ID      string
	Name    string
	Address string
	Image   string
	Rating  float64
	Rooms   []RoomOption
}

func (l *Listing) Room(t RoomType) (RoomOption, error) {
	for _, r := range l.Rooms {
		if r.Type == t {
			return r, nil
		}
	}
	return RoomOption{}, ErrRoomNotFound
}

func (l *Listing) HasRoom(t RoomType) bool {
	_, err := l.Room(t)
	return err == nil
}

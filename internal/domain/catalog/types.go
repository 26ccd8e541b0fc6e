package catalog

type RoomType string

// Wire identifiers as exposed by the upstream listing API.
const (
	RoomDeluxe       RoomType = "deluxe"
	RoomJuniorSuite  RoomType = "junior"
	RoomPresidential RoomType = "presidencial"
)

func (t RoomType) String() string {
	return string(t)
}

func (t RoomType) IsZero() bool {
	return t == ""
}

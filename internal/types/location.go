package types

// Location is a geocoded place. It is built once per lookup and never cached.
type Location struct {
	Query       string
	Coordinates Coords
	DisplayName string
}

package boundary

// Orientation is the winding direction of a closed boundary
type Orientation uint16

const (
	ORIENTATION_UNDEFINED = Orientation(iota)
	ORIENTATION_CLOCKWISE
	ORIENTATION_COUNTERCLOCKWISE
)

func (iotaIdx Orientation) String() string {
	return [...]string{"undefined", "clockwise", "counterclockwise"}[iotaIdx]
}

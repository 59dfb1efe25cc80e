package engine

// Key is a decoded logical key press. Input adapters map platform keys onto this set.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeySpace
)

var keyNames = map[Key]string{
	KeyUp:    "Up",
	KeyDown:  "Down",
	KeyLeft:  "Left",
	KeyRight: "Right",
	KeySpace: "Space",
}

// String returns the key name
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}

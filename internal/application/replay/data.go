// Package replay records and plays back per-frame input so a session can be
// reproduced from its seed.
package replay

// FormatVersion is written into every recording
const FormatVersion = "2.1"

// FrameInput records the decoded input of a single frame.
// Only frames with at least one event are stored.
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	U  bool    `json:"u,omitempty"`  // Up
	D  bool    `json:"d,omitempty"`  // Down
	L  bool    `json:"l,omitempty"`  // Left
	R  bool    `json:"r,omitempty"`  // Right
	P  bool    `json:"p,omitempty"`  // Pause (Space)
	C  bool    `json:"c,omitempty"`  // Click
	MX float64 `json:"mx,omitempty"` // Click X in pixels
	MY float64 `json:"my,omitempty"` // Click Y in pixels
}

// Empty reports whether the frame carries no events
func (f FrameInput) Empty() bool {
	return !f.U && !f.D && !f.L && !f.R && !f.P && !f.C
}

// Board records the dimensions the session was played on
type Board struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Layout records the engine settings that change how input plays out:
// the tick interval paces moves, the cell size and button place the click target.
type Layout struct {
	TickNanos     int64   `json:"tickNanos"`
	CellSize      float64 `json:"cellSize"`
	ButtonWidth   float64 `json:"buttonWidth"`
	ButtonHeight  float64 `json:"buttonHeight"`
	ButtonOffsetY float64 `json:"buttonOffsetY"`
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version     string       `json:"version"`
	SessionID   string       `json:"sessionId"`
	Seed        int64        `json:"seed"`
	Board       Board        `json:"board"`
	Layout      Layout       `json:"layout"`
	FrameNanos  int64        `json:"frameNanos"`
	StartTime   string       `json:"startTime"`
	TotalFrames int          `json:"totalFrames"`
	Frames      []FrameInput `json:"frames"`
}

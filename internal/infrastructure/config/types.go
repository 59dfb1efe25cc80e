package config

// GameConfig is the root config for game.json
type GameConfig struct {
	Board   BoardConfig   `json:"board"`
	Display DisplayConfig `json:"display"`
	Timing  TimingConfig  `json:"timing"`
	Button  ButtonConfig  `json:"button"`
	Seed    int64         `json:"seed"` // 0 means seed from the current time
}

// BoardConfig sets the grid dimensions in cells
type BoardConfig struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type DisplayConfig struct {
	Title     string  `json:"title"`
	CellSize  float64 `json:"cellSize"`  // Pixels per grid cell
	Scale     int     `json:"scale"`     // Window scale factor
	Framerate int     `json:"framerate"` // Host frames per second
}

type TimingConfig struct {
	TickIntervalMs int `json:"tickIntervalMs"` // Minimum time between snake moves
}

// ButtonConfig lays out the start/restart button
type ButtonConfig struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	OffsetY float64 `json:"offsetY"` // Distance above the board's vertical centre
}

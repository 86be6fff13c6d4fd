package config

// Row identifies a horizontal band of the player spritesheet.
// The numeric values are the row indices in the sheet.
type Row int

const (
	RowDown Row = iota
	RowLeft
	RowRight
	RowUp
	RowDownLeft
	RowDownRight
	RowUpLeft
	RowUpRight
	RowCount // Must be last - used for array sizing
)

var rowNames = [RowCount]string{
	RowDown:      "down",
	RowLeft:      "left",
	RowRight:     "right",
	RowUp:        "up",
	RowDownLeft:  "down-left",
	RowDownRight: "down-right",
	RowUpLeft:    "up-left",
	RowUpRight:   "up-right",
}

func (r Row) String() string {
	if r < 0 || r >= RowCount {
		return "unknown"
	}
	return rowNames[r]
}

// ModeID is the top-level game mode.
type ModeID int

const (
	ModeMenu ModeID = iota
	ModePlaying
)

func (m ModeID) String() string {
	switch m {
	case ModeMenu:
		return "menu"
	case ModePlaying:
		return "playing"
	}
	return "unknown"
}

package maze

// NoSet marks a room that does not belong to any connectivity set.
const NoSet = -1

// Walls holds the four boundary flags of a room. Front and Back face the
// previous and next row, Left and Right the neighbouring columns.
type Walls struct {
	Front bool `json:"front" yaml:"front" toml:"front"`
	Back  bool `json:"back" yaml:"back" toml:"back"`
	Left  bool `json:"left" yaml:"left" toml:"left"`
	Right bool `json:"right" yaml:"right" toml:"right"`
}

// Room is one cell of the grid together with the set-id used while sweeping.
type Room struct {
	Walls
	SetID int
}

// NewRoom returns a room with no walls and no set.
func NewRoom() Room { return Room{SetID: NoSet} }

// Row is an ordered run of rooms, one per column.
type Row []Room

// Grid is the full sequence of rows produced by a generation run.
type Grid []Row

// Width returns the number of columns, or 0 for an empty grid.
func (g Grid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Height returns the number of rows.
func (g Grid) Height() int { return len(g) }

func newRow(width int) Row {
	row := make(Row, width)
	for i := range row {
		row[i] = NewRoom()
	}
	return row
}

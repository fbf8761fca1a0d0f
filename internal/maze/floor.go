package maze

// Floor is a generated grid as the host lays it out: set ids are gone and the
// outer boundary is walled in.
type Floor struct {
	W, H  int
	rooms []Walls
}

// Enclose copies the wall flags of grid into a Floor, forcing the front wall
// on the first row, the left wall on the first column, the back wall on the
// last row and the right wall on the last column.
func Enclose(grid Grid) *Floor {
	f := &Floor{W: grid.Width(), H: grid.Height()}
	f.rooms = make([]Walls, f.W*f.H)
	for i, row := range grid {
		for j, room := range row {
			f.rooms[f.Index(j, i)] = Walls{
				Front: i == 0,
				Back:  i == f.H-1 || room.Back,
				Left:  j == 0,
				Right: j == f.W-1 || room.Right,
			}
		}
	}
	return f
}

// Index returns the linear index of column x in row y.
func (f *Floor) Index(x, y int) int { return y*f.W + x }

// At returns the walls of the room at column x, row y.
func (f *Floor) At(x, y int) Walls { return f.rooms[f.Index(x, y)] }

// Set overwrites the walls of the room at column x, row y. Generation never
// calls it; it exists for building hand-made fixtures.
func (f *Floor) Set(x, y int, w Walls) { f.rooms[f.Index(x, y)] = w }

// Empty reports whether the floor has no rooms.
func (f *Floor) Empty() bool { return len(f.rooms) == 0 }

// OpenRight reports whether the room at (x, y) connects to (x+1, y).
func (f *Floor) OpenRight(x, y int) bool {
	return x+1 < f.W && !f.At(x, y).Right
}

// OpenDown reports whether the room at (x, y) connects to (x, y+1).
func (f *Floor) OpenDown(x, y int) bool {
	return y+1 < f.H && !f.At(x, y).Back
}

// PlanRow is one exported row.
type PlanRow struct {
	Rooms []Walls `json:"rooms" yaml:"rooms" toml:"rooms"`
}

// Plan is the serialisable form of a floor.
type Plan struct {
	Width  int       `json:"width" yaml:"width" toml:"width"`
	Height int       `json:"height" yaml:"height" toml:"height"`
	Seed   int64     `json:"seed" yaml:"seed" toml:"seed"`
	Rows   []PlanRow `json:"rows" yaml:"rows" toml:"rows"`
}

// Plan converts the floor into its exported form, tagged with the seed it was
// generated from.
func (f *Floor) Plan(seed int64) Plan {
	p := Plan{Width: f.W, Height: f.H, Seed: seed, Rows: make([]PlanRow, f.H)}
	for y := 0; y < f.H; y++ {
		rooms := make([]Walls, f.W)
		copy(rooms, f.rooms[y*f.W:(y+1)*f.W])
		p.Rows[y] = PlanRow{Rooms: rooms}
	}
	return p
}

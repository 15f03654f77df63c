package material

// Handle is a stable reference to a material stored in an Arena
type Handle uint32

// Arena owns every material used by one render.
// Handles are only produced by Add, so a handle taken from an arena always resolves.
type Arena struct {
	materials []Material
}

// NewArena creates an arena with room for capacity materials
func NewArena(capacity int) *Arena {
	return &Arena{materials: make([]Material, 0, capacity)}
}

// Add stores a material and returns its handle
func (a *Arena) Add(m Material) Handle {
	a.materials = append(a.materials, m)
	return Handle(len(a.materials) - 1)
}

// Get returns the material for a handle
func (a *Arena) Get(h Handle) *Material {
	return &a.materials[h]
}

// Len returns the number of stored materials
func (a *Arena) Len() int {
	return len(a.materials)
}

// CountByKind returns how many materials of each kind the arena holds
func (a *Arena) CountByKind() map[Kind]int {
	counts := make(map[Kind]int)
	for i := range a.materials {
		counts[a.materials[i].Kind]++
	}
	return counts
}

package gel

import "fmt"

// Registry holds the loaded fragments. It is plain in-memory state: the
// controller mutates it, the renderer reads it.
type Registry struct {
	fragments  []*Fragment
	loaded     bool
	wellOffset float64
}

// NewRegistry creates an empty registry. wellOffset is the starting
// position every fragment is parked at when lanes are loaded.
func NewRegistry(wellOffset float64) *Registry {
	return &Registry{wellOffset: wellOffset}
}

// Load replaces the current fragments with one fragment per size per lane,
// all parked at the well offset and unfinished.
func (r *Registry) Load(lanes []LaneDef) {
	r.fragments = r.fragments[:0]
	for _, ld := range lanes {
		for i, size := range ld.Sizes {
			r.fragments = append(r.fragments, &Fragment{
				ID:       fmt.Sprintf("L%d-%d-%dbp", ld.Lane, i, size),
				Lane:     ld.Lane,
				SizeBP:   size,
				Position: r.wellOffset,
			})
		}
	}
	r.loaded = len(r.fragments) > 0
}

// Clear empties the registry unconditionally.
func (r *Registry) Clear() {
	r.fragments = nil
	r.loaded = false
}

func (r *Registry) Loaded() bool { return r.loaded }

func (r *Registry) Count() int { return len(r.fragments) }

// Fragments returns the live fragment slice in load order. Callers on the
// event loop may read positions directly; mutation goes through the
// controller.
func (r *Registry) Fragments() []*Fragment { return r.fragments }

// Lanes returns the distinct lane indices in load order.
func (r *Registry) Lanes() []int {
	seen := make(map[int]bool)
	lanes := make([]int, 0, 8)
	for _, f := range r.fragments {
		if !seen[f.Lane] {
			seen[f.Lane] = true
			lanes = append(lanes, f.Lane)
		}
	}
	return lanes
}

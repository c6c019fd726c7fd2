package catalog

import (
	"fmt"
	"sort"
)

// Registry holds every loaded item indexed by ID. It is read-only once loading
// completes and safe for concurrent Get.
type Registry struct {
	items map[string]Item
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]Item)}
}

// Register adds item to the registry.
//
// Precondition: item must not be nil.
// Postcondition: Get(id) returns (item, true); returns error if the id is already registered.
func (r *Registry) Register(item Item) error {
	id := item.Info().ID
	if _, exists := r.items[id]; exists {
		return fmt.Errorf("catalog: Registry.Register: item ID %q already registered", id)
	}
	r.items[id] = item
	return nil
}

// Get returns the item for id and whether it was found.
func (r *Registry) Get(id string) (Item, bool) {
	item, ok := r.items[id]
	return item, ok
}

// Len returns the number of registered items.
func (r *Registry) Len() int {
	return len(r.items)
}

// All returns every registered item sorted by ID.
func (r *Registry) All() []Item {
	out := make([]Item, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Info().ID < out[j].Info().ID })
	return out
}

// WithTag returns the IDs of every item carrying tag, sorted by ID.
func (r *Registry) WithTag(tag string) []string {
	var out []string
	for _, item := range r.All() {
		if item.Info().HasTag(tag) {
			out = append(out, item.Info().ID)
		}
	}
	return out
}

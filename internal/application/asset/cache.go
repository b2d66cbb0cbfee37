package asset

import "github.com/younwookim/flycopter/internal/application/render"

// Cache is the single owner of a scene's textures, keyed by identifier.
// Not safe for concurrent use; scenes touch it only from the frame loop.
type Cache struct {
	textures map[string]render.Texture
}

// NewCache creates an empty cache
func NewCache() *Cache {
	return &Cache{textures: make(map[string]render.Texture)}
}

// Put stores tex under id, replacing any previous texture
func (c *Cache) Put(id string, tex render.Texture) {
	c.textures[id] = tex
}

// Get borrows the texture stored under id, or nil
func (c *Cache) Get(id string) render.Texture {
	return c.textures[id]
}

// Has reports whether id is loaded
func (c *Cache) Has(id string) bool {
	_, ok := c.textures[id]
	return ok
}

// HasAll reports whether every spec is loaded
func (c *Cache) HasAll(specs []Spec) bool {
	for _, s := range specs {
		if !c.Has(s.ID) {
			return false
		}
	}
	return true
}

// Len returns the number of loaded textures
func (c *Cache) Len() int {
	return len(c.textures)
}

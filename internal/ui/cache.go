package ui

// TextureCache maps texture keys such as "w_knight" to loaded textures.
// It is owned by one Renderer and only touched from the draw goroutine.
type TextureCache struct {
	textures map[string]Texture
}

// NewTextureCache creates an empty cache.
func NewTextureCache() *TextureCache {
	return &TextureCache{textures: make(map[string]Texture)}
}

// Put stores t under key, replacing any previous entry.
func (tc *TextureCache) Put(key string, t Texture) {
	tc.textures[key] = t
}

// Get returns the texture stored under key.
func (tc *TextureCache) Get(key string) (Texture, bool) {
	t, ok := tc.textures[key]
	return t, ok
}

// Len returns the number of cached textures.
func (tc *TextureCache) Len() int {
	return len(tc.textures)
}

// Clear passes every texture to release (if non-nil) and empties the cache.
func (tc *TextureCache) Clear(release func(Texture)) {
	for k, t := range tc.textures {
		if release != nil {
			release(t)
		}
		delete(tc.textures, k)
	}
}

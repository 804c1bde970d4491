package render

import "sync"

var (
	atlasMu sync.RWMutex
	atlases = map[string]*Atlas{}
)

// RegisterAtlas stores an atlas by key, replacing any previous one.
func RegisterAtlas(key string, a *Atlas) {
	if key == "" || a == nil {
		return
	}
	atlasMu.Lock()
	defer atlasMu.Unlock()
	atlases[key] = a
}

// GetAtlas returns a cached atlas by key.
func GetAtlas(key string) *Atlas {
	if key == "" {
		return nil
	}
	atlasMu.RLock()
	defer atlasMu.RUnlock()
	return atlases[key]
}

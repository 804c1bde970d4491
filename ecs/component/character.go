package component

import "github.com/milk9111/billboard/billboard"

// Character wraps the billboard aggregate so it can live in the world. The
// library is kept to rebuild the table when the prefab is reloaded.
type Character struct {
	*billboard.AnimatedCharacter
	Library *billboard.Library
	Prefab  string
}

var CharacterComponent = NewComponent[Character]()

package component

// IntentScript drives an entity's MoveIntent from a tengo script.
type IntentScript struct {
	Path  string
	Clock float64
}

var IntentScriptComponent = NewComponent[IntentScript]()

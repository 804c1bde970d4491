package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type Name struct {
	Value string
}

var NameComponent = NewComponent[Name]()

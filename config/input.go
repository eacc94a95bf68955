package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionSelect
	ActionBack
	ActionDebug
	ActionCount // Must be last - used for array sizing
)

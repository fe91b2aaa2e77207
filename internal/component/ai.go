package component

// AI marks an entity that acts during the AI phase of a turn.
// The reflex policy keeps no memory, so the marker carries no state.
type AI struct{}

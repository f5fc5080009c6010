package config

// Normalize reconciles the mutually exclusive autoHide and loop flags. Looping
// never ends on its own, so autoHide wins and loop is turned off. changed
// reports whether the input was adjusted.
func Normalize(autoHide, loop bool) (bool, bool, bool) {
	normalized := loop && !autoHide
	return autoHide, normalized, normalized != loop
}

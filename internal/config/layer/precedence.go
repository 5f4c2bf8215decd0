package layer

// Standard priority levels for configuration layers.
// Higher values override lower values during merging.
const (
	// PriorityBuiltin is the lowest priority for built-in defaults.
	PriorityBuiltin = 0

	// PriorityUser is for the user config file.
	PriorityUser = 100

	// PriorityEnv is for environment variable overrides.
	PriorityEnv = 500
)

// DefaultPriority returns the default priority for a given source.
func DefaultPriority(source Source) int {
	switch source {
	case SourceUser:
		return PriorityUser
	case SourceEnv:
		return PriorityEnv
	default:
		return PriorityBuiltin
	}
}

// StandardLayerName returns the standard name for a source.
func StandardLayerName(source Source) string {
	switch source {
	case SourceBuiltin:
		return "defaults"
	case SourceUser:
		return "user"
	case SourceEnv:
		return "environment"
	default:
		return "unknown"
	}
}

package types

// Command describes a single external executable invocation.
type Command struct {
	Name string
	Argv []string
	Dir  string

	// If neither Env nor WithEnv is set, the environment is inherited.
	Env     map[string]string // replaces the inherited environment
	WithEnv map[string]string // added on top of the inherited environment
}

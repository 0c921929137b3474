package fsm

// RootConfig is the TOML graph description
type RootConfig struct {
	InitialState string                  `toml:"initial"`
	States       map[string]*StateConfig `toml:"states"`
}

// StateConfig describes one state by registered action and guard names
type StateConfig struct {
	OnEnter     []string           `toml:"on_enter"`
	OnUpdate    []string           `toml:"on_update"`
	OnExit      []string           `toml:"on_exit"`
	Transitions []TransitionConfig `toml:"transitions"`
}

// TransitionConfig is one edge, empty guard always passes
type TransitionConfig struct {
	Target string `toml:"target"`
	Guard  string `toml:"guard"`
}

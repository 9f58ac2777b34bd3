package command

// Names of the commands the orchestrator understands.
const (
	AddMask       = "add-mask"
	AddMatcher    = "add-matcher"
	AddPath       = "add-path"
	Debug         = "debug"
	Echo          = "echo"
	EndGroup      = "endgroup"
	Error         = "error"
	Group         = "group"
	Notice        = "notice"
	RemoveMatcher = "remove-matcher"
	SaveState     = "save-state"
	SetEnv        = "set-env"
	SetOutput     = "set-output"
	StopCommands  = "stop-commands"
	Warning       = "warning"
)

var conventionalNames = map[string]struct{}{
	AddMask:       {},
	AddMatcher:    {},
	AddPath:       {},
	Debug:         {},
	Echo:          {},
	EndGroup:      {},
	Error:         {},
	Group:         {},
	Notice:        {},
	RemoveMatcher: {},
	SaveState:     {},
	SetEnv:        {},
	SetOutput:     {},
	StopCommands:  {},
	Warning:       {},
}

// IsConventional reports whether name is one of the known command names.
// The check is advisory; unconventional commands are still emitted.
func IsConventional(name string) bool {
	_, ok := conventionalNames[name]
	return ok
}

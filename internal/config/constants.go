package config

// SettingsFileNames are searched, in order, by FindSettings.
var SettingsFileNames = []string{"stlc.yaml", "stlc.yml"}

// IsTestMode indicates if the program is running under go test.
// The shell uses it to keep session ids stable in transcripts.
var IsTestMode = false

// Evaluation strategy names, as spelled in flags and settings files.
const (
	StrategyCallByValue = "cbv"
	StrategyCallByName  = "cbn"
)

const (
	DefaultPrompt        = "λ "
	DefaultMaxSteps      = 1000000
	DefaultTraceCapacity = 64
	// UnboundedSteps as max_steps turns the step bound off.
	UnboundedSteps = -1
)

// Shell command names.
const (
	CmdHelp     = ":help"
	CmdQuit     = ":quit"
	CmdQuitAbbr = ":q"
	CmdType     = ":type"
	CmdEval     = ":eval"
	CmdStrategy = ":strategy"
	CmdTrace    = ":trace"
	CmdSteps    = ":steps"
)

// GoodbyeMessage is printed when the shell reaches end of input.
const GoodbyeMessage = "Connection terminated"

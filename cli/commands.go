package cli

var (
	Version   = ""
	CommitSHA = ""
)

// Globals defines global flags available to all commands.
type Globals struct {
	Telemetry bool `help:"Show timing telemetry for operations."`
}

type Commands struct {
	Globals

	Lex    LexCmd    `cmd:"" default:"withargs" help:"Tokenize a Tiny source file and print the token listing."`
	Check  CheckCmd  `cmd:"" help:"Tokenize a Tiny source file and report lexical errors."`
	Watch  WatchCmd  `cmd:"" help:"Re-tokenize a Tiny source file whenever it changes."`
	Doctor DoctorCmd `cmd:"" help:"Doctor utilities for debugging the tokenizer."`
}

package shell

import (
	"fmt"
	"strings"

	"ramos/hal"
	"ramos/state"
)

// Interp executes committed command lines against the session state.
type Interp struct {
	sh    *Shell
	st    *state.State
	store hal.Storage
	power hal.Power
}

// NewInterp wires the interpreter to its collaborators.
func NewInterp(sh *Shell, st *state.State, store hal.Storage, power hal.Power) *Interp {
	return &Interp{sh: sh, st: st, store: store, power: power}
}

// State returns the live session state. load replaces its contents
// wholesale, so callers should hold this pointer, not a copy.
func (in *Interp) State() *state.State { return in.st }

// Prompt returns the "user@host:> " prefix from the identity vars.
func (in *Interp) Prompt() string {
	return fmt.Sprintf("%s@%s:> ", in.st.VarOr("user", "ramos"), in.st.VarOr("host", "ramos"))
}

// Commit takes the pending input line and runs it. Non-empty lines
// land in history verbatim before execution.
func (in *Interp) Commit() {
	line := in.sh.TakeInput()
	if line != "" {
		in.st.History = append(in.st.History, line)
	}
	in.Execute(line)
}

// Execute echoes line behind the prompt and dispatches its first
// token. An empty line echoes the bare prompt and does nothing else;
// a line with no tokens dispatches nothing.
func (in *Interp) Execute(line string) {
	in.sh.Println(in.Prompt() + line)
	if line == "" {
		return
	}
	args := strings.Fields(line)
	if len(args) == 0 {
		return
	}
	cmd := args[0]
	args = args[1:]

	switch cmd {
	case "help":
		in.sh.Println("Commands: help, about, clear, echo, set, get, vars, save, load, reboot, shutdown")
	case "about":
		in.sh.Println("RAMOS is a meme UEFI OS with a hand-drawn UI.")
	case "clear":
		in.sh.Clear()
	case "echo":
		in.sh.Println(strings.Join(args, " "))
	case "set":
		in.cmdSet(args)
	case "get":
		in.cmdGet(args)
	case "vars":
		in.cmdVars()
	case "history":
		in.cmdHistory()
	case "save":
		in.cmdSave()
	case "load":
		in.cmdLoad()
	case "reboot":
		in.power.Reset(hal.ResetCold)
	case "shutdown":
		in.power.Reset(hal.ResetShutdown)
	case "flag":
		in.cmdFlag()
	default:
		in.sh.Println("unknown command")
	}
}

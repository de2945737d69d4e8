package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"ramos/hal"
	"ramos/state"
)

func main() {
	var dir string
	var force bool
	flag.StringVar(&dir, "dir", "", "State volume directory.")
	flag.BoolVar(&force, "force", false, "Overwrite an existing state file on init.")
	flag.Parse()

	if dir == "" {
		fmt.Fprintln(os.Stderr, "error: -dir is required")
		os.Exit(2)
	}

	var err error
	switch flag.Arg(0) {
	case "init":
		err = runInit(dir, force)
	case "dump":
		err = runDump(dir, os.Stdout)
	default:
		fmt.Fprintln(os.Stderr, "usage: mkstate -dir <volume> [-force] init|dump")
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runInit(dir string, force bool) error {
	store := hal.NewDirStorage(dir)
	if !force && state.Exists(store) {
		return fmt.Errorf("state file already exists in %q (use -force to overwrite)", dir)
	}
	st := state.New()
	st.Seed()
	return state.Save(store, st)
}

// runDump parses the state file with the same fallbacks the console
// uses, so a missing or corrupt file dumps as a fresh seeded state.
func runDump(dir string, out io.Writer) error {
	store := hal.NewDirStorage(dir)
	st := state.Load(store, func(s string) { fmt.Fprintln(out, s) })
	for _, k := range st.VarNames() {
		fmt.Fprintf(out, "%s=%s\n", k, st.Vars[k])
	}
	for i, h := range st.History {
		fmt.Fprintf(out, "%d: %s\n", i, h)
	}
	fmt.Fprintf(out, "hints: %v\n", st.HintsShown)
	return nil
}

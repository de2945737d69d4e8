package shell

import (
	"fmt"
	"strings"

	"ramos/state"
)

func (in *Interp) cmdSet(args []string) {
	if len(args) < 2 {
		in.sh.Println("usage: set <key> <value>")
		return
	}
	in.st.Vars[args[0]] = args[1]
	in.sh.Println("ok")
}

func (in *Interp) cmdGet(args []string) {
	if len(args) < 1 {
		in.sh.Println("usage: get <key>")
		return
	}
	if v, ok := in.st.Vars[args[0]]; ok {
		in.sh.Println(v)
	} else {
		in.sh.Println("(unset)")
	}
}

// cmdVars lists key=value pairs in sorted key order, skipping the
// underscore-prefixed hidden keys.
func (in *Interp) cmdVars() {
	for _, k := range in.st.VarNames() {
		if strings.HasPrefix(k, "_") {
			continue
		}
		in.sh.Println(k + "=" + in.st.Vars[k])
	}
}

func (in *Interp) cmdHistory() {
	for i, h := range in.st.History {
		in.sh.Println(fmt.Sprintf("%d: %s", i, h))
	}
}

func (in *Interp) cmdSave() {
	if err := state.Save(in.store, in.st); err != nil {
		in.sh.Println(fmt.Sprintf("save failed: %v", err))
		return
	}
	in.sh.Println("state saved")
}

// cmdLoad never fails user-visibly: a missing or unreadable file
// falls back to the seeded bootstrap state.
func (in *Interp) cmdLoad() {
	*in.st = *state.Load(in.store, in.sh.Println)
	in.sh.Println("state loaded")
}

func (in *Interp) cmdFlag() {
	secret, ok := in.st.Vars["_vault"]
	if !ok {
		in.sh.Println("nothing here")
		return
	}
	if decoded, ok := state.DecodeLenient(secret); ok {
		in.sh.Println(decoded)
	} else {
		in.sh.Println("vault sealed")
	}
}

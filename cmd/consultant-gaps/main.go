package main

import (
	"consultant-gaps/cmd/consultant-gaps/commands"
	"consultant-gaps/lib/serviceutil"
)

func main() {
	commands.ExecuteContext(serviceutil.SignalContext())
}

package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
)

// serverAddr is shared by every command. STEAMINVEST_ADDR overrides the
// default; the -addr flag overrides both.
var serverAddr = defaultAddr()

func defaultAddr() string {
	if addr := os.Getenv("STEAMINVEST_ADDR"); addr != "" {
		return addr
	}
	return "http://localhost:8080"
}

func main() {
	flag.StringVar(&serverAddr, "addr", serverAddr, "SteamInvest API address.")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(&listCmd{}, "inventory")
	commander.Register(&searchCmd{}, "inventory")
	commander.Register(&getCmd{}, "inventory")
	commander.Register(&addCmd{}, "inventory")
	commander.Register(&updateCmd{}, "inventory")
	commander.Register(&deleteCmd{}, "inventory")
	commander.Register(&statsCmd{}, "inventory")
	commander.Register(&refreshCmd{}, "market")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

package main

import (
	_ "net/http/pprof"

	"github.com/Jhansik957/CRISPR-Design-Dashboard/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}

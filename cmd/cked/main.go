package main

import "github.com/pthm/cked/cmd/cked/commands"

func main() {
	commands.Execute()
}

package main

import "github.com/akyairhashvil/pomodoro/cmd/app/commands"

func main() {
	commands.Execute()
}

package main

import "github.com/JonasFriedli/DestructiveJSON/cmd"

func main() {
	cmd.Execute()
}

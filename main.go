package main

import "SignalScout/cmd"

func main() {
	cmd.Execute()
}

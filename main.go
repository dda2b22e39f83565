package main

import "github.com/slidetools/szi2svs/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/gnames/gnplants/cmd"

func main() {
	cmd.Execute()
}

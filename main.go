package main

import "gdash/cmd"

func main() {
	cmd.Execute()
}

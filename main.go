package main

import "gradebook/cmd"

func main() {
	cmd.Execute()
}

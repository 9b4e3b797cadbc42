package main

import "github.com/katalvlaran/borderline/cmd"

func main() {
	cmd.Execute()
}

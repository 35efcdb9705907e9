package main

import "github.com/notbuiltyet/build-ideas/cmd/build-ideas/cmd"

func main() {
	cmd.Execute()
}

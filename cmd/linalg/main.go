package main

import "k3l.io/go-linalg/cmd/linalg/cmd"

func main() {
	cmd.Execute()
}

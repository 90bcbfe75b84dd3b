package main

import "github.com/ker0olos/sift/cmd"

func main() {
	cmd.Execute()
}

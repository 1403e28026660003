package main

import "github.com/mouse-blink/docstream/cmd"

func main() {
	cmd.Execute()
}

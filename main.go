package main

import "github.com/mouse-blink/reindex/cmd"

func main() {
	cmd.Execute()
}

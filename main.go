package main

import "github.com/samplemap/clipgen/cmd"

func main() {
	cmd.Execute()
}

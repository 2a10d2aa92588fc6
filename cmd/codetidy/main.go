package main

import "github.com/codetidy/codetidy/internal/cmd"

func main() {
	cmd.Execute()
}

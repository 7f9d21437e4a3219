package main

import "github.com/evalizada/manat/cmd"

func main() {
	cmd.Execute()
}

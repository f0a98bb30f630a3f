package main

import "github.com/Fabricio-devs/Sudoku/cmd"

func main() {
	cmd.Execute()
}

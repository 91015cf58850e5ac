package main

import (
	"fmt"

	"tictactoe/internal/engine"
	"tictactoe/internal/tictactoe"
)

func main() {
	b := tictactoe.Empty
	fmt.Println("Position:", tictactoe.Encode(b, true))
	fmt.Println("Index:", b.Index())
	fmt.Println("Legal moves:", b.EmptyCells().Count())

	e := engine.NewEngine()
	for _, m := range e.Moves(b, true) {
		fmt.Println(" ", m)
	}
	fmt.Println(e.Stats())
}

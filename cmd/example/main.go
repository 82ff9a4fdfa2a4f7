package main

import (
	"fmt"
	"log"
	"math"

	"github.com/optsrv/osil/osil"
)

func main() {
	log.SetPrefix("example: ")
	log.SetFlags(0)

	// Minimize: x + y + (x - 1)^2
	// Subject to: x + y >= 1, 0 <= x,y <= 10
	model := osil.Model{
		Description: "example problem",
		Objective:   []osil.Expr{osil.Term(1, 0), osil.Term(1, 1)},
		ObjNonlinear: osil.Apply("^",
			osil.Apply("-", osil.Var(0), osil.Num(1)),
			osil.Num(2)),
		ColLower: []float64{0.0, 0.0},
		ColUpper: []float64{10.0, 10.0},
	}
	model.AddDenseRow(1.0, []float64{1.0, 1.0}, math.Inf(1)) // x + y >= 1

	solution, err := model.Solve("ipopt", osil.WithTimeLimit(60))
	if err != nil {
		log.Fatal(err)
	}

	for _, w := range solution.Warnings {
		log.Print(w)
	}
	if solution.IsOptimal() {
		fmt.Printf("x = %.2f, y = %.2f\n", solution.Value(0), solution.Value(1))
		fmt.Printf("Objective = %.2f\n", solution.Objective)
	} else {
		fmt.Printf("Solve finished with status %s\n", solution.Status)
	}
}

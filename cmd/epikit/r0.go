package main

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"gonum.org/v1/gonum/mat"

	"github.com/tverem/epikit/ngm"
)

func r0Command() *cli.Command {
	return &cli.Command{
		Name:  "r0",
		Usage: "Spectral radius of a 2-group next-generation matrix",
		Flags: []cli.Flag{
			&cli.Float64SliceFlag{
				Name:    "contact",
				Aliases: []string{"C"},
				Usage:   "contact matrix in row-major order: C00,C01,C10,C11",
				Value:   cli.NewFloat64Slice(2, 1, 1, 2),
			},
			&cli.Float64Flag{Name: "n1", Value: 1, Usage: "population of group 1"},
			&cli.Float64Flag{Name: "n2", Value: 1, Usage: "population of group 2"},
		},
		Action: r0Action,
	}
}

func r0Action(c *cli.Context) error {
	values := c.Float64Slice("contact")
	if len(values) != 4 {
		return fmt.Errorf("need exactly 4 contact entries, got %d", len(values))
	}

	radius, err := ngm.SpectralRadius(
		mat.NewDense(2, 2, values), c.Float64("n1"), c.Float64("n2"))
	if err != nil {
		return err
	}
	fmt.Printf("%.6f\n", radius)
	return nil
}

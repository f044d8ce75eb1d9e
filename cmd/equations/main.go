package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/solvercat/equations"
)

func main() {
	var (
		verb       string
		plot       bool
		zeros      bool
		xmin, xmax float64
		step       float64
	)
	flag.StringVar(&verb, "fmt", "%g", "result formatting string")
	flag.BoolVar(&plot, "plot", false, "print an x,y table over the range instead of a single value")
	flag.BoolVar(&zeros, "zeros", false, "with -plot, also print recognized zeros")
	flag.Float64Var(&xmin, "min", -10, "range start for -plot")
	flag.Float64Var(&xmax, "max", 10, "range end for -plot")
	flag.Float64Var(&step, "step", 1, "sample spacing for -plot")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if step <= 0 {
		log.Fatal().Float64("step", step).Msg("step must be positive")
	}

	eqs := flag.Args()
	if len(eqs) == 0 {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			if sc.Text() != "" {
				eqs = append(eqs, sc.Text())
			}
		}
		if err := sc.Err(); err != nil {
			log.Fatal().Err(err).Msg("reading stdin")
		}
	}

	code := 0
	for _, eq := range eqs {
		if err := run(eq, verb, plot, zeros, float32(xmin), float32(xmax), float32(step)); err != nil {
			log.Error().Err(err).Str("equation", eq).Msg("evaluation failed")
			code = 1
		}
	}
	os.Exit(code)
}

func run(eq, verb string, plot, zeros bool, xmin, xmax, step float32) error {
	if !plot {
		r, err := equations.Calculate(eq)
		if err != nil {
			return err
		}
		fmt.Printf(verb+"\n", r)
		return nil
	}
	data, err := equations.BuildEquationData(eq, xmin, xmax, step)
	if err != nil {
		return err
	}
	if zeros && len(data.Zeros) > 0 {
		for _, z := range data.Zeros {
			fmt.Printf("zero "+verb+"\n", z)
		}
	}
	for _, p := range data.Points {
		fmt.Printf(verb+","+verb+"\n", p.X, p.Y)
	}
	return nil
}

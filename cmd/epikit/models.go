package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/tverem/epikit/compartmental"
	"github.com/tverem/epikit/scenario"
)

// outFlags are shared by every trajectory command.
func outFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML scenario file (its matching block overrides the flags)",
		},
		&cli.StringFlag{
			Name:    "out",
			Aliases: []string{"o"},
			Usage:   "output file (default stdout)",
		},
	}
}

func sirCommand() *cli.Command {
	return &cli.Command{
		Name:  "sir",
		Usage: "Integrate the closed-population SIR model, emit CSV",
		Flags: append(outFlags(),
			&cli.Float64Flag{Name: "susceptible", Aliases: []string{"s"}, Value: 990, Usage: "initial susceptible count"},
			&cli.Float64Flag{Name: "infected", Aliases: []string{"i"}, Value: 10, Usage: "initial infected count"},
			&cli.Float64Flag{Name: "recovered", Aliases: []string{"r"}, Value: 0, Usage: "initial recovered count"},
			&cli.Float64Flag{Name: "beta", Value: 0.3, Usage: "transmission rate"},
			&cli.Float64Flag{Name: "gamma", Value: 0.1, Usage: "recovery rate"},
			&cli.Float64Flag{Name: "tmax", Value: 160, Usage: "simulation horizon"},
			&cli.Float64Flag{Name: "step", Value: 0.1, Usage: "Euler step size"},
		),
		Action: sirAction,
	}
}

func sirAction(c *cli.Context) error {
	log := newLogger(c.Bool("verbose"))
	defer func() { _ = log.Sync() }()

	p := scenario.SIR{
		Susceptible: c.Float64("susceptible"),
		Infected:    c.Float64("infected"),
		Recovered:   c.Float64("recovered"),
		Beta:        c.Float64("beta"),
		Gamma:       c.Float64("gamma"),
		TMax:        c.Float64("tmax"),
		Step:        c.Float64("step"),
	}
	if path := c.String("config"); path != "" {
		sc, err := scenario.Load(path)
		if err != nil {
			return err
		}
		if sc.SIR == nil {
			return fmt.Errorf("scenario %q has no sir block", path)
		}
		p = *sc.SIR
	}

	model, err := compartmental.NewSIR(
		p.Susceptible, p.Infected, p.Recovered, p.Beta, p.Gamma, p.TMax, p.Step)
	if err != nil {
		return err
	}
	series := model.Run()
	log.Infow("integrated SIR", "points", len(series.Time), "population", series.N)

	w, closeOut, err := openOutput(c.String("out"))
	if err != nil {
		return err
	}
	defer func() { _ = closeOut() }()
	return writeSeriesCSV(w,
		[]string{"t", "S", "I", "R"},
		series.Time, series.S, series.I, series.R)
}

func sirbdCommand() *cli.Command {
	return &cli.Command{
		Name:  "sirbd",
		Usage: "Integrate SIR with births and deaths, emit CSV",
		Flags: append(outFlags(),
			&cli.Float64Flag{Name: "population", Value: 1000, Usage: "initial total population"},
			&cli.Float64Flag{Name: "susceptible", Aliases: []string{"s"}, Value: 990, Usage: "initial susceptible count"},
			&cli.Float64Flag{Name: "infected", Aliases: []string{"i"}, Value: 10, Usage: "initial infected count"},
			&cli.Float64Flag{Name: "recovered", Aliases: []string{"r"}, Value: 0, Usage: "initial recovered count"},
			&cli.Float64Flag{Name: "beta", Value: 0.3, Usage: "transmission rate"},
			&cli.Float64Flag{Name: "gamma", Value: 0.1, Usage: "recovery rate"},
			&cli.Float64Flag{Name: "birth-rate", Value: 0.01, Usage: "per-capita birth rate"},
			&cli.Float64Flag{Name: "death-rate", Value: 0.01, Usage: "per-capita death rate"},
			&cli.Float64Flag{Name: "tmax", Value: 160, Usage: "simulation horizon"},
			&cli.Float64Flag{Name: "step", Value: 0.1, Usage: "Euler step size"},
		),
		Action: sirbdAction,
	}
}

func sirbdAction(c *cli.Context) error {
	log := newLogger(c.Bool("verbose"))
	defer func() { _ = log.Sync() }()

	p := scenario.SIRBD{
		Population:  c.Float64("population"),
		Susceptible: c.Float64("susceptible"),
		Infected:    c.Float64("infected"),
		Recovered:   c.Float64("recovered"),
		Beta:        c.Float64("beta"),
		Gamma:       c.Float64("gamma"),
		BirthRate:   c.Float64("birth-rate"),
		DeathRate:   c.Float64("death-rate"),
		TMax:        c.Float64("tmax"),
		Step:        c.Float64("step"),
	}
	if path := c.String("config"); path != "" {
		sc, err := scenario.Load(path)
		if err != nil {
			return err
		}
		if sc.SIRBD == nil {
			return fmt.Errorf("scenario %q has no sirbd block", path)
		}
		p = *sc.SIRBD
	}

	model, err := compartmental.NewSIRBD(
		p.Population, p.Susceptible, p.Infected, p.Recovered,
		p.Beta, p.Gamma, p.BirthRate, p.DeathRate, p.TMax, p.Step)
	if err != nil {
		return err
	}
	series := model.Run()
	log.Infow("integrated SIR-BD", "points", len(series.Time))

	w, closeOut, err := openOutput(c.String("out"))
	if err != nil {
		return err
	}
	defer func() { _ = closeOut() }()
	return writeSeriesCSV(w,
		[]string{"t", "S", "I", "R", "N"},
		series.Time, series.S, series.I, series.R, series.N)
}

func sisCommand() *cli.Command {
	return &cli.Command{
		Name:  "sis",
		Usage: "Integrate the normalized SIS model, emit CSV or an error table",
		Flags: append(outFlags(),
			&cli.Float64Flag{Name: "susceptible", Aliases: []string{"s"}, Value: 0.99, Usage: "initial susceptible fraction"},
			&cli.Float64Flag{Name: "infected", Aliases: []string{"i"}, Value: 0.01, Usage: "initial infected fraction"},
			&cli.Float64Flag{Name: "beta", Value: 3, Usage: "transmission rate"},
			&cli.Float64Flag{Name: "gamma", Value: 2, Usage: "recovery rate"},
			&cli.Float64Flag{Name: "tmax", Value: 25, Usage: "simulation horizon"},
			&cli.Float64Flag{Name: "step", Value: 0.01, Usage: "Euler step size"},
			&cli.Float64SliceFlag{
				Name:  "error-sweep",
				Usage: "emit max |euler - analytical| per step size instead of a trajectory",
			},
		),
		Action: sisAction,
	}
}

func sisAction(c *cli.Context) error {
	log := newLogger(c.Bool("verbose"))
	defer func() { _ = log.Sync() }()

	p := scenario.SIS{
		Susceptible: c.Float64("susceptible"),
		Infected:    c.Float64("infected"),
		Beta:        c.Float64("beta"),
		Gamma:       c.Float64("gamma"),
		TMax:        c.Float64("tmax"),
		Step:        c.Float64("step"),
		ErrorSteps:  c.Float64Slice("error-sweep"),
	}
	if path := c.String("config"); path != "" {
		sc, err := scenario.Load(path)
		if err != nil {
			return err
		}
		if sc.SIS == nil {
			return fmt.Errorf("scenario %q has no sis block", path)
		}
		p = *sc.SIS
	}

	model, err := compartmental.NewSIS(
		p.Susceptible, p.Infected, p.Beta, p.Gamma, p.TMax, p.Step)
	if err != nil {
		return err
	}

	w, closeOut, err := openOutput(c.String("out"))
	if err != nil {
		return err
	}
	defer func() { _ = closeOut() }()

	if len(p.ErrorSteps) > 0 {
		points, err := model.ErrorSweep(p.ErrorSteps)
		if err != nil {
			return err
		}
		log.Infow("swept step sizes", "steps", len(points))
		steps := make([]float64, len(points))
		errs := make([]float64, len(points))
		for idx, pt := range points {
			steps[idx], errs[idx] = pt.Step, pt.MaxError
		}
		return writeSeriesCSV(w, []string{"step", "max_error"}, steps, errs)
	}

	series := model.Run()
	exact := model.Analytical()
	log.Infow("integrated SIS", "points", len(series.Time), "r0", model.R0())
	return writeSeriesCSV(w,
		[]string{"t", "s", "i", "i_analytical"},
		series.Time, series.S, series.I, exact)
}

func groupsCommand() *cli.Command {
	return &cli.Command{
		Name:  "groups",
		Usage: "Integrate the four-group heterogeneous-susceptibility SIR, emit CSV",
		Flags: append(outFlags(),
			&cli.Float64SliceFlag{
				Name:    "susceptibility",
				Aliases: []string{"p"},
				Value:   cli.NewFloat64Slice(1, 2, 3, 4),
				Usage:   "four susceptibility multipliers",
			},
			&cli.Float64Flag{Name: "contact-rate", Value: 2.0, Usage: "fully mixed contact rate"},
			&cli.Float64Flag{Name: "gamma", Value: 3.0, Usage: "recovery rate"},
			&cli.Float64Flag{Name: "tmax", Value: 20, Usage: "simulation horizon"},
			&cli.Float64Flag{Name: "step", Value: 0.005, Usage: "Euler step size"},
		),
		Action: groupsAction,
	}
}

func groupsAction(c *cli.Context) error {
	log := newLogger(c.Bool("verbose"))
	defer func() { _ = log.Sync() }()

	p := scenario.Groups{
		ContactRate: c.Float64("contact-rate"),
		Gamma:       c.Float64("gamma"),
		TMax:        c.Float64("tmax"),
		Step:        c.Float64("step"),
	}
	mult := c.Float64Slice("susceptibility")
	if len(mult) != 4 {
		return fmt.Errorf("need exactly 4 susceptibility multipliers, got %d", len(mult))
	}
	copy(p.Susceptibility[:], mult)

	if path := c.String("config"); path != "" {
		sc, err := scenario.Load(path)
		if err != nil {
			return err
		}
		if sc.Groups == nil {
			return fmt.Errorf("scenario %q has no groups block", path)
		}
		p = *sc.Groups
	}

	var opts []compartmental.GroupOption
	if p.Infected != 0 || p.Susceptible != 0 || p.Recovered != 0 {
		opts = append(opts,
			compartmental.WithInitialFractions(p.Susceptible, p.Infected, p.Recovered))
	}
	model, err := compartmental.NewFourGroup(
		p.Susceptibility, p.ContactRate, p.Gamma, p.TMax, p.Step, opts...)
	if err != nil {
		return err
	}

	series := model.Run()
	pbar := series.MeanSusceptibility()
	log.Infow("integrated four-group SIR", "points", len(series.Time))

	T := len(series.Time)
	cols := make([][]float64, 0, 14)
	header := make([]string, 0, 14)
	cols, header = append(cols, series.Time), append(header, "t")
	for g := 0; g < 4; g++ {
		col := make([]float64, T)
		for t := 0; t < T; t++ {
			col[t] = series.S.At(t, g)
		}
		cols, header = append(cols, col), append(header, fmt.Sprintf("s%d", g+1))
	}
	for g := 0; g < 4; g++ {
		col := make([]float64, T)
		for t := 0; t < T; t++ {
			col[t] = series.I.At(t, g)
		}
		cols, header = append(cols, col), append(header, fmt.Sprintf("i%d", g+1))
	}
	for g := 0; g < 4; g++ {
		col := make([]float64, T)
		for t := 0; t < T; t++ {
			col[t] = series.R.At(t, g)
		}
		cols, header = append(cols, col), append(header, fmt.Sprintf("r%d", g+1))
	}
	cols, header = append(cols, pbar), append(header, "p_bar")

	w, closeOut, err := openOutput(c.String("out"))
	if err != nil {
		return err
	}
	defer func() { _ = closeOut() }()
	return writeSeriesCSV(w, header, cols...)
}

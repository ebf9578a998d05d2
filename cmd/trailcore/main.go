// Command trailcore searches low-weight differential trail cores in the
// small-scale column-parity permutation. Every use-case is a
// subcommand; rounds and max-weight are positional with defaults 5
// and 30.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/trailcore/search"
)

func main() {
	app := &cli.App{
		Name:  "trailcore",
		Usage: "search low-weight differential trail cores in a 4×16 column-parity permutation",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable per-trail debug logging",
			},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				logrus.SetLevel(logrus.DebugLevel)
			}
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "count",
				Usage:     "count two-round trail cores by weight",
				ArgsUsage: "[max-weight]",
				Action:    runCount,
			},
			{
				Name:      "find",
				Usage:     "find the best multi-round trail",
				ArgsUsage: "[rounds [max-weight]]",
				Action:    runFind,
			},
			{
				Name:      "count-kernel",
				Usage:     "count in-kernel trails",
				ArgsUsage: "[rounds [max-weight]]",
				Action:    runCountKernel,
			},
			{
				Name:      "extend",
				Usage:     "extend trails from a brute-force file",
				ArgsUsage: "file [rounds [max-weight]]",
				Action:    runExtend,
			},
			{
				Name:      "bruteforce-kernel",
				Usage:     "enumerate in-kernel cores over the empty parity profile",
				ArgsUsage: "[max-weight]",
				Action:    runBruteforceKernel,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

// intArg returns the i-th positional argument as an int, or def when
// absent.
func intArg(c *cli.Context, i, def int) (int, error) {
	if c.Args().Len() <= i {
		return def, nil
	}
	v, err := strconv.Atoi(c.Args().Get(i))
	if err != nil {
		return 0, fmt.Errorf("argument %d: %w", i, err)
	}
	return v, nil
}

func runCount(c *cli.Context) error {
	maxWeight, err := intArg(c, 0, search.DefaultMaxWeight)
	if err != nil {
		return err
	}
	counts := search.CountTrailCores(maxWeight)
	for w, n := range counts.All {
		fmt.Printf("%d: %d\n", w, n)
	}
	fmt.Println("------------")
	for w, n := range counts.Kernel {
		fmt.Printf("%d: %d\n", w, n)
	}
	return nil
}

func runFind(c *cli.Context) error {
	rounds, err := intArg(c, 0, search.DefaultRounds)
	if err != nil {
		return err
	}
	maxWeight, err := intArg(c, 1, search.DefaultMaxWeight)
	if err != nil {
		return err
	}
	best, err := search.FindTrails(rounds, maxWeight)
	if err != nil {
		return err
	}
	fmt.Printf("Best trail:\n%s\n", best.String())
	return nil
}

func runCountKernel(c *cli.Context) error {
	rounds, err := intArg(c, 0, search.DefaultRounds)
	if err != nil {
		return err
	}
	maxWeight, err := intArg(c, 1, search.DefaultMaxWeight)
	if err != nil {
		return err
	}
	stats, cores, err := search.CountInKernelTrails(rounds, maxWeight)
	if err != nil {
		return err
	}
	fmt.Printf("in-kernel cores: %d\n", cores)
	for w, n := range stats {
		fmt.Printf("%d %d\n", w, n)
	}
	return nil
}

func runExtend(c *cli.Context) error {
	if c.Args().Len() < 1 {
		return fmt.Errorf("extend: missing brute-force file argument")
	}
	filename := c.Args().Get(0)
	rounds, err := intArg(c, 1, search.DefaultRounds)
	if err != nil {
		return err
	}
	maxWeight, err := intArg(c, 2, search.DefaultMaxWeight)
	if err != nil {
		return err
	}
	best, err := search.ExtendFromBruteforce(rounds, maxWeight, filename)
	if err != nil {
		return err
	}
	fmt.Printf("Best trail:\n%s\n", best.String())
	return nil
}

func runBruteforceKernel(c *cli.Context) error {
	maxWeight, err := intArg(c, 0, search.DefaultMaxWeight)
	if err != nil {
		return err
	}
	best, cores := search.BruteforceInKernel(maxWeight)
	fmt.Printf("in-kernel cores: %d\n", cores)
	fmt.Println(best.String())
	return nil
}

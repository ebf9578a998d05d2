// Command bruteforce generates every state pair of bounded weight over
// the canonical parity profiles of pattern 0x13 and writes the
// nibble-packed records to 0x13_<maxweight>.txt in the working
// directory.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/trailcore/search"
)

func main() {
	app := &cli.App{
		Name:      "bruteforce",
		Usage:     "generate bounded-weight state pairs for later trail extension",
		ArgsUsage: "[max-weight]",
		Action:    run,
	}
	if err := app.Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func run(c *cli.Context) error {
	maxWeight := 10
	if c.Args().Len() > 0 {
		if _, err := fmt.Sscanf(c.Args().Get(0), "%d", &maxWeight); err != nil {
			return fmt.Errorf("max-weight: %w", err)
		}
	}

	name := fmt.Sprintf("0x13_%d.txt", maxWeight)
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	total, err := search.Bruteforce(maxWeight, w)
	if err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println(total)
	return nil
}

package search

import (
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/trailcore/trail"
)

// ExtendFromBruteforce streams the 16-byte records of a brute-force
// file, extends each two-round trail to rounds rounds within maxWeight,
// and returns the best trail found. The returned trail is empty when
// no record extends successfully.
func ExtendFromBruteforce(rounds, maxWeight int, filename string) (trail.Trail, error) {
	f, err := os.Open(filename)
	if err != nil {
		return trail.Trail{}, fmt.Errorf("search: open %s: %w", filename, err)
	}
	defer f.Close()

	minWeight := math.MaxInt
	var best trail.Trail

	for {
		var t trail.Trail
		if !t.LoadBruteforce(f) {
			break
		}

		ext := trail.FromTrail(t)
		for i := 0; i < rounds-2; i++ {
			if err := ext.ExtendForward(maxWeight); err != nil {
				return trail.Trail{}, err
			}
		}
		for i := 0; i < rounds-2; i++ {
			if err := ext.ExtendBackward(maxWeight); err != nil {
				return trail.Trail{}, err
			}
		}

		pruned, err := ext.BestTrail(rounds)
		if err != nil {
			return trail.Trail{}, err
		}
		if pruned.Len() != rounds {
			continue
		}
		logrus.Debugf("search: candidate trail\n%s", pruned.String())
		if pruned.TotalWeight > 0 && pruned.TotalWeight < minWeight && pruned.TotalWeight <= maxWeight {
			minWeight = pruned.TotalWeight
			best = pruned
			logrus.WithField("weight", best.TotalWeight).Infof("search: best trail updated\n%s", best.String())
		}
	}
	return best, nil
}

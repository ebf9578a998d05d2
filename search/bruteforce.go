package search

import (
	"io"
	"math/bits"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/trailcore/state"
)

// bfConfig pairs a mask of odd columns with the mask of columns the
// θ-effect of that parity touches, both indexed by z.
type bfConfig struct {
	odd      uint32
	affected uint32
}

// bfConfigs lists every canonical parity profile of pattern 0x13 whose
// base weight can stay within the generator's budget.
var bfConfigs = []bfConfig{
	{1, 38}, {3, 106}, {7, 242}, {9, 278}, {11, 346}, {13, 398}, {15, 450},
	{17, 582}, {19, 522}, {23, 658}, {35, 1194}, {39, 1074}, {47, 1282},
	{77, 2062}, {79, 2114}, {147, 4362}, {151, 4498}, {155, 4154},
	{159, 4258}, {215, 6162}, {275, 9226}, {303, 8962}, {305, 8326},
	{311, 8274}, {431, 12290}, {591, 17474}, {619, 16410}, {623, 16514},
	{1103, 36930}, {1235, 32906}, {1239, 32786}, {2479, 3}, {4369, 17476},
	{4371, 17416}, {4399, 17152}, {4405, 16412}, {4407, 16464},
	{4527, 20480}, {4685, 9228}, {4687, 9280}, {4715, 8216}, {4719, 8320},
	{4883, 2056}, {4887, 2192}, {4941, 524}, {4943, 576}, {4947, 392},
	{4951, 272}, {4959, 32}, {5069, 4364}, {5071, 4416}, {5079, 4624},
	{6831, 2561}, {9903, 518}, {13527, 8212},
}

// Column values an odd column may take, and the orbital values that can
// be layered on top of a column, with the yMin bookkeeping that keeps
// the layering canonical per column.
var (
	bfOddValues     = []uint8{1, 2, 4, 8, 7, 0xb, 0xd, 0xe}
	bfOrbitalValues = []uint8{3, 5, 9, 6, 0xa, 0xc}
	bfOrbitalYMin   = []int{2, 4, 4, 4, 4, 4}
	bfYMinToOrbital = []int{0, 3, 5}
)

// bfState is the generator's column-indexed representation of a state
// pair: a[z] and b[z] hold the nibble of column z.
type bfState struct {
	a, b   [state.LaneSize]uint8
	weight int
}

func (s *bfState) setWeight() {
	s.weight = 0
	for z := 0; z < state.LaneSize; z++ {
		s.weight += bits.OnesCount8(s.a[z])
		s.weight += bits.OnesCount8(s.b[z])
	}
}

// encode packs the pair into one 16-byte record: 8 nibble-packed bytes
// for a, then 8 for b, low nibble at the even z.
func (s *bfState) encode() [16]byte {
	var buf [16]byte
	for z := 0; z < state.LaneSize; z += 2 {
		buf[z/2] = s.a[z] | s.a[z+1]<<4
		buf[8+z/2] = s.b[z] | s.b[z+1]<<4
	}
	return buf
}

// Bruteforce generates every state pair of total weight at most
// maxWeight over the canonical parity profiles of pattern 0x13, writing
// one 16-byte record per pair to w. Configurations run concurrently;
// the writer is serialized by a mutex. Returns the number of records
// written.
func Bruteforce(maxWeight int, w io.Writer) (uint64, error) {
	var (
		mu    sync.Mutex
		total atomic.Uint64
		g     errgroup.Group
	)

	for _, cfg := range bfConfigs {
		cfg := cfg
		g.Go(func() error {
			return bfConfigStates(cfg, maxWeight, &mu, w, &total)
		})
	}
	if err := g.Wait(); err != nil {
		return total.Load(), err
	}
	return total.Load(), nil
}

// bfConfigStates enumerates the odd-column value assignments of one
// configuration and expands each base pair with orbitals.
func bfConfigStates(cfg bfConfig, maxWeight int, mu *sync.Mutex, w io.Writer, total *atomic.Uint64) error {
	var oddIdx, affectedIdx []int
	for z := 0; z < state.LaneSize; z++ {
		if (cfg.odd>>z)&1 != 0 {
			oddIdx = append(oddIdx, z)
		}
		if (cfg.affected>>z)&1 != 0 {
			affectedIdx = append(affectedIdx, z)
		}
	}

	possibilities := 1
	for range oddIdx {
		possibilities *= len(bfOddValues)
	}

	for i := 0; i < possibilities; i++ {
		var s bfState
		divider := 1
		for _, z := range oddIdx {
			s.a[z] = bfOddValues[(i/divider)%len(bfOddValues)]
			s.b[z] = s.a[z]
			divider *= len(bfOddValues)
		}
		for _, z := range affectedIdx {
			s.b[z] ^= 0xf
		}
		s.setWeight()

		if s.weight <= maxWeight {
			if err := bfAddOrbitals(s, cfg.affected, maxWeight, mu, w, total); err != nil {
				return err
			}
		}
	}
	return nil
}

// bfOrbitalItem is one queue entry of the orbital expansion.
type bfOrbitalItem struct {
	s    bfState
	yMin [state.LaneSize]int
}

// bfAddOrbitals emits start and every orbital completion of it within
// maxWeight, breadth-first. Columns already filled above y=1 and
// affected columns take no orbitals.
func bfAddOrbitals(start bfState, affected uint32, maxWeight int, mu *sync.Mutex, w io.Writer, total *atomic.Uint64) error {
	var yMin [state.LaneSize]int
	for z := 0; z < state.LaneSize; z++ {
		switch {
		case start.a[z]&0xc != 0 || (affected>>z)&1 != 0:
			yMin[z] = state.ColumnSize
		case start.a[z]&2 != 0:
			yMin[z] = 2
		case start.a[z]&1 != 0:
			yMin[z] = 1
		}
	}

	queue := []bfOrbitalItem{{s: start, yMin: yMin}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		record := item.s.encode()
		mu.Lock()
		_, err := w.Write(record[:])
		mu.Unlock()
		if err != nil {
			return err
		}
		total.Add(1)

		if item.s.weight+4 > maxWeight {
			continue
		}
		for z := 0; z < state.LaneSize; z++ {
			if item.yMin[z] > 2 {
				continue
			}
			for j := bfYMinToOrbital[item.yMin[z]]; j < len(bfOrbitalValues); j++ {
				next := item
				next.s.a[z] ^= bfOrbitalValues[j]
				next.s.b[z] ^= bfOrbitalValues[j]
				next.s.weight += 4
				next.yMin[z] = bfOrbitalYMin[j]
				queue = append(queue, next)
			}
		}
	}
	return nil
}

package trail

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/trailcore/state"
)

// ErrBadTrailData indicates a trail stream that is exhausted or starts
// with a zero round count.
var ErrBadTrailData = errors.New("trail: could not read trail data")

// Save writes the trail as a whitespace-separated decimal stream:
// the round count, total weight and initial index, the weights, the
// state count, then each state's rows, terminated by a newline.
func (t *Trail) Save(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "%d %d %d ", len(t.Weights), t.TotalWeight, t.InitialIndex); err != nil {
		return err
	}
	for _, weight := range t.Weights {
		if _, err := fmt.Fprintf(w, "%d ", weight); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "%d ", len(t.States)); err != nil {
		return err
	}
	for i := range t.States {
		for y := 0; y < state.ColumnSize; y++ {
			if _, err := fmt.Fprintf(w, "%d ", t.States[i].Row(y)); err != nil {
				return err
			}
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// Load reads a trail previously written by Save. It fails with
// ErrBadTrailData when the stream is exhausted or the round count is
// zero.
func (t *Trail) Load(r io.Reader) error {
	var rounds int
	if _, err := fmt.Fscan(r, &rounds); err != nil || rounds == 0 {
		return ErrBadTrailData
	}
	if _, err := fmt.Fscan(r, &t.TotalWeight, &t.InitialIndex); err != nil {
		return fmt.Errorf("trail: reading header: %w", err)
	}

	t.Weights = make([]int, rounds)
	for i := range t.Weights {
		if _, err := fmt.Fscan(r, &t.Weights[i]); err != nil {
			return fmt.Errorf("trail: reading weight %d: %w", i, err)
		}
	}

	var states int
	if _, err := fmt.Fscan(r, &states); err != nil {
		return fmt.Errorf("trail: reading state count: %w", err)
	}
	t.States = make([]state.State, states)
	for i := range t.States {
		for y := 0; y < state.ColumnSize; y++ {
			var row uint16
			if _, err := fmt.Fscan(r, &row); err != nil {
				return fmt.Errorf("trail: reading state %d: %w", i, err)
			}
			t.States[i].SetRow(y, row)
		}
	}
	return nil
}

// LoadFile reads one trail from the named file.
func (t *Trail) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("trail: load %s: %w", path, err)
	}
	defer f.Close()
	if err := t.Load(f); err != nil {
		return fmt.Errorf("trail: load %s: %w", path, err)
	}
	return nil
}

// LoadBruteforce reads one 16-byte brute-force record: 8 bytes of
// nibble-packed columns for state A (low nibble at z=2i, high nibble at
// z=2i+1) followed by 8 bytes for state B. State B is dispersed after
// decoding; the resulting two-round trail carries the Hamming weights
// of its states. It reports false when no full record remains.
func (t *Trail) LoadBruteforce(r io.Reader) bool {
	var buf [16]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return false
	}

	var a, b state.State
	for i := 0; i < 8; i++ {
		a.SetColumn(buf[i]&0x0f, 2*i)
		a.SetColumn(buf[i]>>4, 2*i+1)
		b.SetColumn(buf[8+i]&0x0f, 2*i)
		b.SetColumn(buf[8+i]>>4, 2*i+1)
	}

	t.Clear()
	state.ApplyDispersion(&b)
	t.Append(a, a.HammingWeight())
	t.Append(b, b.HammingWeight())
	return true
}

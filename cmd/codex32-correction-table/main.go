// Command codex32-correction-table prints a sorted list of the syndromes
// produced by single- and double-character errors in a 48-character "ms"
// share, and the error pattern that produces each one.
//
// It takes no flags; HRP and share length are fixed the way the upstream
// reference tool fixes them, since a correction table is only useful
// once its parameters (and therefore its output) are pinned down.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"seedhammer.com/codex32"
)

const (
	hrp      = "ms"
	shareLen = 48
)

// target is the checksum engine's short target tag, SECRETSHARE32,
// added elementwise into every candidate residue below so that the
// zero-error case prints as that tag rather than as all-Q.
var target = []codex32.Fe{
	codex32.FeS, codex32.FeE, codex32.FeC, codex32.FeR, codex32.FeE, codex32.FeT,
	codex32.FeS, codex32.FeH, codex32.FeA, codex32.FeR, codex32.FeE, codex32.Fe3,
	codex32.Fe2,
}

// errorEntry is an error in a share, not an error in this program.
type errorEntry struct {
	position int
	diff     codex32.Fe
}

func (e errorEntry) String() string {
	return fmt.Sprintf("+%c @ %02d", e.diff.CharCase(codex32.Upper), e.position)
}

func residueKey(residue []codex32.Fe) string {
	b := new(strings.Builder)
	b.Grow(len(residue))
	for i, r := range residue {
		b.WriteByte(r.Add(target[i]).CharCase(codex32.Upper))
	}
	return b.String()
}

func run(stdout io.Writer, hrp string, shareLen int) error {
	offset := len(hrp) + 1
	dataLen := shareLen - offset
	if dataLen <= 13 {
		return fmt.Errorf("share length %d too small for HRP %q", shareLen, hrp)
	}

	base := codex32.NewShortChecksum()
	if err := base.InputHRP(hrp); err != nil {
		return err
	}
	// Mask out the contribution of the HRP and the initial-state
	// constant, so the residues below measure only the synthetic error.
	base.ForceResidueToZero()

	residues := make(map[string][]errorEntry)

	// Singles: every position that can carry a data character before the
	// trailing checksum, every nonzero diff.
	for i := 0; i < dataLen-13; i++ {
		for diff := range codex32.NonZeroValues() {
			eng := base.Clone()
			for scan := 0; scan < dataLen; scan++ {
				if scan == i {
					eng.InputFe(diff)
				} else {
					eng.InputFe(codex32.FeQ)
				}
			}
			residues[residueKey(eng.Residue())] = []errorEntry{
				{position: i, diff: diff},
			}
		}
	}

	// Doubles: every ordered pair of positions, every pair of nonzero diffs.
	for i := 0; i < dataLen; i++ {
		for j := i + 1; j < dataLen; j++ {
			for d1 := range codex32.NonZeroValues() {
				for d2 := range codex32.NonZeroValues() {
					eng := base.Clone()
					for scan := 0; scan < dataLen; scan++ {
						switch scan {
						case i:
							eng.InputFe(d1)
						case j:
							eng.InputFe(d2)
						default:
							eng.InputFe(codex32.FeQ)
						}
					}
					residues[residueKey(eng.Residue())] = []errorEntry{
						{position: i, diff: d1},
						{position: j, diff: d2},
					}
				}
			}
		}
	}

	keys := make([]string, 0, len(residues))
	for k := range residues {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		entries := residues[k]
		parts := make([]string, len(entries))
		for i, e := range entries {
			parts[i] = e.String()
		}
		if _, err := fmt.Fprintf(stdout, "%s: %s\n", k, strings.Join(parts, ", ")); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(stdout, "Total: %d possibilities\n", len(residues))
	return err
}

func main() {
	if err := run(os.Stdout, hrp, shareLen); err != nil {
		fmt.Fprintf(os.Stderr, "codex32-correction-table: %v\n", err)
		os.Exit(1)
	}
}

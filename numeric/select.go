package numeric

import "github.com/colbuf/colbuf/format"

// Select runs the candidate-compressor selection described for array
// encoding: if every candidate offers a cheap size estimate, the one with
// the smallest estimate is invoked directly and no other candidate runs at
// all. If any candidate lacks an estimate, or the estimate-driven winner
// declines, every candidate is trial-compressed into its own buffer and the
// smallest actual output wins. Ties are broken by a candidate's position in
// candidates: earlier wins.
//
// Select returns ErrNoCandidate if every candidate declines. When opts is
// non-nil and opts.Profile is set, the winning candidate's ArrayTypeID is
// appended to opts' selection log for later inspection via
// Options.Selections.
func Select[T Unsigned](data []T, candidates []Candidate[T], opts *Options) ([]byte, format.ArrayTypeID, error) {
	if len(candidates) == 0 {
		return nil, 0, ErrNoCandidate
	}

	allEstimated := true
	estimates := make([]int, len(candidates))
	for i, c := range candidates {
		size, ok := c.FastSizeFor(data)
		if !ok {
			allEstimated = false
			break
		}
		estimates[i] = size
	}

	if allEstimated {
		winner := 0
		for i := 1; i < len(candidates); i++ {
			if estimates[i] < estimates[winner] {
				winner = i
			}
		}
		if out, id, ok := candidates[winner].Compress(data, nil); ok {
			recordSelection(opts, id)
			return out, id, nil
		}
		// The estimate-driven winner declined despite offering an
		// estimate; fall through to a full trial-compress pass.
	}

	bestIdx := -1
	var bestOut []byte
	var bestID format.ArrayTypeID

	for i, c := range candidates {
		out, id, ok := c.Compress(data, nil)
		if !ok {
			continue
		}
		if bestIdx == -1 || len(out) < len(bestOut) {
			bestIdx = i
			bestOut = out
			bestID = id
		}
	}

	if bestIdx == -1 {
		return nil, 0, ErrNoCandidate
	}
	recordSelection(opts, bestID)
	return bestOut, bestID, nil
}

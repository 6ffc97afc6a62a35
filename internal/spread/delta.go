package spread

import (
	"math"

	"github.com/spreadmon/spreadmon/pkg/types"
)

// Diff returns the absolute spread movement per symbol per side between two
// snapshots of the same symbol set. Symbols missing from either snapshot are
// omitted. All values are >= 0.
func Diff(prev, curr types.SpreadSnapshot) types.DeltaRecord {
	record := make(types.DeltaRecord, len(curr))

	for symbol, current := range curr {
		previous, ok := prev[symbol]
		if !ok {
			continue
		}

		record[symbol] = types.Delta{
			Ask: math.Abs(previous.Ask - current.Ask),
			Bid: math.Abs(previous.Bid - current.Bid),
		}
	}

	return record
}

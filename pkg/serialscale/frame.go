package serialscale

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

// ws matches separating whitespace, including vertical tabs and Unicode spaces such as NBSP
const ws = `[\s\v\x{85}\p{Z}]+`

// framePattern matches the measurement block printed by the scale firmware, e.g.
//
//	  Date:   09.07.06
//	  Time:   01:13:39
//	  Gross       24kg
var framePattern = regexp.MustCompile(
	ws + `Date:` + ws + `\d\d\.\d\d\.\d\d\n` +
		ws + `Time:` + ws + `\d\d:\d\d:\d\d\n` +
		ws + `Gross` + ws + `(\d+)kg`)

// ParseFrame attempts to extract the gross weight from the data received so far.
// It returns ErrIncompleteFrame as long as no complete frame is contained in data,
// so it may be called repeatedly while data is accumulated
func ParseFrame(data string) (uint32, error) {
	match := framePattern.FindStringSubmatch(data)
	if match == nil {
		return 0, ErrIncompleteFrame
	}

	weight, err := strconv.ParseUint(match[1], 10, 32)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %skg", ErrWeightOverflow, match[1])
		}

		// The pattern only admits decimal digits, so this cannot be reached
		panic(fmt.Sprintf("unexpected gross weight `%s`: %s", match[1], err))
	}

	return uint32(weight), nil
}

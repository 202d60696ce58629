package serialscale

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testDateLine  = "  Date:   09.07.06\n"
	testTimeLine  = "  Time:   01:13:39\n"
	testGrossLine = "  Gross       24kg\n"
)

func TestParseFrame(t *testing.T) {
	var testCases = []struct {
		name     string
		input    string
		expected uint32
		ok       bool
	}{
		{"empty", "", 0, false},
		{"date and time only", testDateLine + testTimeLine, 0, false},
		{"date only", testDateLine, 0, false},
		{"complete", testDateLine + testTimeLine + testGrossLine, 24, true},
		{"zero weight", "  Date:   09.07.13\n  Time:   07:54:36\n  Gross        0kg\n\n", 0, true},
		{"no trailing newline", testDateLine + testTimeLine + "  Gross       24kg", 24, true},
		{"leading garbage", "\x00\x13noise\n" + testDateLine + testTimeLine + testGrossLine, 24, true},
		{"trailing content", testDateLine + testTimeLine + testGrossLine + "  Net 20kg\n  Tare 4kg\n", 24, true},
		{"single space separators", " Date: 09.07.06\n Time: 01:13:39\n Gross 1234kg\n", 1234, true},
		{"tabs", "\tDate:\t09.07.06\n\tTime:\t01:13:39\n\tGross\t\t7kg\n", 7, true},
		{"vertical tab", "  Date:\v09.07.06\n  Time:   01:13:39\n  Gross       24kg\n", 24, true},
		{"no-break spaces", "\u00a0Date:\u00a009.07.06\n\u2007Time:\u300001:13:39\n\u202fGross\u00a0\u00a024kg\n", 24, true},
		{"next line separator", "\u0085Date: 09.07.06\n Time: 01:13:39\n Gross\u008524kg\n", 24, true},
		{"zero width space", "  Date:\u200b09.07.06\n" + testTimeLine + testGrossLine, 0, false},
		{"max uint32", testDateLine + testTimeLine + "  Gross 4294967295kg\n", 4294967295, true},
		{"missing unit", testDateLine + testTimeLine + "  Gross       24\n", 0, false},
		{"wrong unit", testDateLine + testTimeLine + "  Gross       24lb\n", 0, false},
		{"single digit hour", testDateLine + "  Time:   1:13:39\n" + testGrossLine, 0, false},
		{"three digit year", "  Date:   09.07.006\n" + testTimeLine + testGrossLine, 0, false},
		{"out of order", testTimeLine + testDateLine + testGrossLine, 0, false},
		{"interleaved line", testDateLine + "  Operator 3\n" + testTimeLine + testGrossLine, 0, false},
		{"no separating whitespace", testDateLine + testTimeLine + "  Gross24kg\n", 0, false},
		{"no leading whitespace", "Date:   09.07.06\n" + testTimeLine + testGrossLine, 0, false},
		{"carriage returns", "  Date:   09.07.06\r\n  Time:   01:13:39\r\n  Gross       24kg\r\n", 0, false},
	}

	for _, cs := range testCases {
		t.Run(cs.name, func(t *testing.T) {
			weight, err := ParseFrame(cs.input)
			if !cs.ok {
				require.ErrorIs(t, err, ErrIncompleteFrame)
				return
			}
			require.NoError(t, err)
			require.Equal(t, cs.expected, weight)
		})
	}
}

func TestParseFrameOverflow(t *testing.T) {
	for _, gross := range []string{"4294967296", "99999999999999999999999999"} {
		_, err := ParseFrame(testDateLine + testTimeLine + "  Gross " + gross + "kg\n")
		require.ErrorIs(t, err, ErrWeightOverflow)
		require.NotErrorIs(t, err, ErrIncompleteFrame)
	}
}

func TestParseFrameIdempotent(t *testing.T) {
	for _, input := range []string{
		"",
		testDateLine + testTimeLine,
		testDateLine + testTimeLine + testGrossLine,
	} {
		w1, err1 := ParseFrame(input)
		w2, err2 := ParseFrame(input)
		require.Equal(t, w1, w2)
		require.Equal(t, err1, err2)
	}
}

func TestParseFrameMonotonic(t *testing.T) {
	buf := testDateLine + testTimeLine + testGrossLine
	weight, err := ParseFrame(buf)
	require.NoError(t, err)

	for _, more := range []string{
		"\n",
		"  Gross       99kg\n",
		testDateLine + testTimeLine + "  Gross       56kg\n",
		"garbage without newline",
	} {
		grown, err := ParseFrame(buf + more)
		require.NoError(t, err)
		require.Equal(t, weight, grown)
	}
}

func TestParseFrameGrowingBuffer(t *testing.T) {
	lines := []string{"  Printing...\n", testDateLine, testTimeLine, testGrossLine}

	buf := ""
	for i, line := range lines {
		buf += line
		weight, err := ParseFrame(buf)
		if i < len(lines)-1 {
			require.ErrorIs(t, err, ErrIncompleteFrame)
			continue
		}
		require.NoError(t, err)
		require.Equal(t, uint32(24), weight)
	}
}

package chainwalk

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func utcTime(s string) []byte {
	return append([]byte{byte(TagUTCTime), byte(len(s))}, []byte(s)...)
}

func generalizedTime(s string) []byte {
	return append([]byte{byte(TagGeneralizedTime), byte(len(s))}, []byte(s)...)
}

func TestTimeChoiceUTCTimeWindowing(t *testing.T) {
	tests := map[string]struct {
		input    []byte
		wantYear int
	}{
		"49 maps to 2049": {input: utcTime("490101000000Z"), wantYear: 2049},
		"50 maps to 1950": {input: utcTime("500101000000Z"), wantYear: 1950},
		"99 maps to 1999": {input: utcTime("990101000000Z"), wantYear: 1999},
		"00 maps to 2000": {input: utcTime("000101000000Z"), wantYear: 2000},
	}
	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := TimeChoice(NewReader(test.input))
			require.NoError(t, err)

			want, err := TimeChoice(NewReader(generalizedTimeFromYear(test.wantYear)))
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

func generalizedTimeFromYear(year int) []byte {
	s := pad4(year) + "0101000000Z"
	return generalizedTime(s)
}

func pad4(n int) string {
	digits := [4]byte{}
	for i := 3; i >= 0; i-- {
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return string(digits[:])
}

func TestTimeChoiceRejectsNonZuluOffset(t *testing.T) {
	input := append([]byte{byte(TagUTCTime), 15}, []byte("250101000000+00")...)
	_, err := TimeChoice(NewReader(input))
	require.Equal(t, BadDERTime, err)
}

func TestTimeChoiceLeapYearFebruary29(t *testing.T) {
	_, err := TimeChoice(NewReader(generalizedTime("20240229000000Z")))
	require.NoError(t, err)

	_, err = TimeChoice(NewReader(generalizedTime("20230229000000Z")))
	require.Equal(t, BadDERTime, err)
}

func TestTimeChoiceOrdering(t *testing.T) {
	earlier, err := TimeChoice(NewReader(generalizedTime("20200101000000Z")))
	require.NoError(t, err)
	later, err := TimeChoice(NewReader(generalizedTime("20210101000000Z")))
	require.NoError(t, err)

	require.True(t, earlier.Before(later))
	require.False(t, later.Before(earlier))
}

func TestTimeChoiceRejectsGarbageMonth(t *testing.T) {
	_, err := TimeChoice(NewReader(generalizedTime("20200001000000Z")))
	require.Equal(t, BadDERTime, err)
}

package utils_test

import (
	"strings"
	"testing"
	"time"

	"careerhub/src-server/ical/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTCDatetime(t *testing.T) {
	eat := time.FixedZone("EAT", 3*60*60)
	start := time.Date(2024, time.June, 10, 18, 0, 0, 0, eat)

	compact, err := utils.TimeToUTCDatetime(start)
	require.NoError(t, err)
	assert.Equal(t, "20240610T150000Z", compact)

	back, err := utils.UTCDatetimeToTime(compact)
	require.NoError(t, err)
	assert.True(t, back.Equal(start))

	// fraction is dropped
	compact, err = utils.TimeToUTCDatetime(start.Add(750 * time.Millisecond))
	require.NoError(t, err)
	assert.Equal(t, "20240610T150000Z", compact)

	_, err = utils.TimeToUTCDatetime(time.Time{})
	assert.Error(t, err)

	for _, bad := range []string{"", "2024-06-10T15:00:00Z", "20240610T150000", "20241310T150000Z"} {
		_, err := utils.UTCDatetimeToTime(bad)
		assert.Error(t, err, bad)
	}
}

func TestNewCommonName(t *testing.T) {
	cn, err := utils.NewCommonName("Jane Doe", "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "CN=Jane Doe:mailto:jane@example.com", cn)

	cn, err = utils.NewCommonName("", "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "CN=jane@example.com:mailto:jane@example.com", cn)

	_, err = utils.NewCommonName("Doe, Jane", "jane@example.com")
	assert.Error(t, err)
	_, err = utils.NewCommonName("Jane", "")
	assert.Error(t, err)
}

func TestSplit75wrapper(t *testing.T) {
	var sb strings.Builder
	writer := utils.Split75wrapper(sb.WriteString)

	_, err := writer("SUMMARY:short")
	require.NoError(t, err)
	assert.Equal(t, "SUMMARY:short", sb.String())

	sb.Reset()
	long := "DESCRIPTION:" + strings.Repeat("a", 200)
	_, err = writer(long)
	require.NoError(t, err)
	lines := strings.Split(sb.String(), "\r\n")
	require.Len(t, lines, 3)
	assert.Len(t, lines[0], 75)
	for _, l := range lines[1:] {
		assert.True(t, strings.HasPrefix(l, " "))
		assert.LessOrEqual(t, len(l), 75)
	}
	unfolded := strings.ReplaceAll(sb.String(), "\r\n ", "")
	assert.Equal(t, long, unfolded)
}

package gametime

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodOf_Boundaries(t *testing.T) {
	tests := []struct {
		hour int
		want TimeOfDay
	}{
		{0, Night},
		{5, Night},
		{6, Morning},
		{8, Morning},
		{11, Morning},
		{12, Afternoon},
		{14, Afternoon},
		{16, Afternoon},
		{17, Evening},
		{19, Evening},
		{20, Evening},
		{21, Night},
		{23, Night},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, PeriodOf(tt.hour), "hour %d", tt.hour)
	}
}

func TestPeriodOf_CoversEveryHour(t *testing.T) {
	counts := map[TimeOfDay]int{}
	for h := 0; h < 24; h++ {
		counts[PeriodOf(h)]++
	}
	assert.Equal(t, map[TimeOfDay]int{Morning: 6, Afternoon: 5, Evening: 4, Night: 9}, counts)
}

func TestTimeOfDay_ClockFollowsHour(t *testing.T) {
	c := NewClock(10)
	for h := 0; h < 24; h++ {
		c.hour = h
		assert.Equal(t, PeriodOf(h), c.TimeOfDay())
	}
}

func TestTimeOfDay_String(t *testing.T) {
	assert.Equal(t, "morning", Morning.String())
	assert.Equal(t, "afternoon", Afternoon.String())
	assert.Equal(t, "evening", Evening.String())
	assert.Equal(t, "night", Night.String())
	assert.Equal(t, "TimeOfDay(9)", TimeOfDay(9).String())
}

func TestTimeOfDay_JSON(t *testing.T) {
	b, err := json.Marshal(Status{Day: 1, Hour: 13, TimeOfDay: Afternoon})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"time_of_day":"afternoon"`)

	var st Status
	require.NoError(t, json.Unmarshal(b, &st))
	assert.Equal(t, Afternoon, st.TimeOfDay)

	var bad TimeOfDay
	assert.Error(t, bad.UnmarshalText([]byte("dawn")))

	_, err = json.Marshal(TimeOfDay(-1))
	assert.Error(t, err)
}

func TestReason_String(t *testing.T) {
	assert.Equal(t, "none", ReasonNone.String())
	assert.Equal(t, "invalid_duration", ReasonInvalidDuration.String())
	assert.Equal(t, "invalid_target", ReasonInvalidTarget.String())
	assert.Equal(t, "already_at_target", ReasonAlreadyAtTarget.String())
	assert.Equal(t, "unknown", Reason(99).String())
}

func TestWaitResult_JSONCarriesReasonName(t *testing.T) {
	c := NewClock(10)
	b, err := json.Marshal(c.WaitUntil(8))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"reason":"already_at_target"`)

	var res WaitResult
	require.NoError(t, json.Unmarshal(b, &res))
	assert.Equal(t, ReasonAlreadyAtTarget, res.Reason)

	var r Reason
	assert.Error(t, r.UnmarshalText([]byte("bogus")))
}

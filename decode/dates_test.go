// Copyright 2026 The respx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package decode

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateStrategy(t *testing.T) {
	testCases := []struct {
		name     string
		expected DateStrategy
	}{
		{"", nil},
		{"iso8601", ISO8601},
		{"ISO8601", ISO8601},
		{"rfc1123", RFC1123},
		{" seconds ", UnixSeconds},
		{"milliseconds", UnixMillis},
		{"layout:2006-01-02", Layout("2006-01-02")},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			ds, err := ParseDateStrategy(testCase.name)
			require.NoError(t, err)
			assert.Equal(t, testCase.expected, ds)
		})
	}
	for _, bad := range []string{"layout:", "fortnights"} {
		ds, err := ParseDateStrategy(bad)
		assert.Nil(t, ds)
		assert.Error(t, err)
	}
}

func TestResolveDates(t *testing.T) {
	assert.Equal(t, ISO8601, ResolveDates(nil, nil))
	assert.Equal(t, UnixMillis, ResolveDates(nil, UnixMillis))
	assert.Equal(t, UnixSeconds, ResolveDates(UnixSeconds, UnixMillis))
}

func TestDateStrategies(t *testing.T) {
	t.Run("layout", func(t *testing.T) {
		d, err := Layout("2006-01-02").DecodeTime("2021-03-04")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2021, 3, 4, 0, 0, 0, 0, time.UTC), d)
		_, err = Layout("2006-01-02").DecodeTime(json.Number("1"))
		assert.Error(t, err)
		assert.Equal(t, "layout:2006-01-02", Layout("2006-01-02").String())
	})
	t.Run("unix", func(t *testing.T) {
		d, err := UnixSeconds.DecodeTime(json.Number("1.5"))
		require.NoError(t, err)
		assert.Equal(t, time.Unix(1, 500000000).UTC(), d)
		d, err = UnixMillis.DecodeTime(float64(2500))
		require.NoError(t, err)
		assert.Equal(t, time.Unix(2, 500000000).UTC(), d)
		d, err = UnixSeconds.DecodeTime("10")
		require.NoError(t, err)
		assert.Equal(t, time.Unix(10, 0).UTC(), d)
		_, err = UnixSeconds.DecodeTime(true)
		assert.Error(t, err)
		assert.Equal(t, "seconds", UnixSeconds.String())
	})
	t.Run("far from epoch", func(t *testing.T) {
		d, err := UnixSeconds.DecodeTime(json.Number("10000000000"))
		require.NoError(t, err)
		assert.Equal(t, time.Unix(10000000000, 0).UTC(), d)
		d, err = UnixSeconds.DecodeTime(json.Number("253402300799"))
		require.NoError(t, err)
		assert.Equal(t, 9999, d.Year())
		d, err = UnixMillis.DecodeTime(json.Number("-1500"))
		require.NoError(t, err)
		assert.Equal(t, time.Unix(-2, 500000000).UTC(), d)
		for _, v := range []string{"1e300", "-1e300", "NaN", "Inf"} {
			_, err = UnixMillis.DecodeTime(json.Number(v))
			assert.Error(t, err, v)
		}
	})
}

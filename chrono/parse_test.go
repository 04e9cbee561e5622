package chrono_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngrash/go-chrono/chrono"
	"github.com/ngrash/go-chrono/civil"
	"github.com/ngrash/go-chrono/zone"
)

func TestParseOffsetDateTime(t *testing.T) {
	tests := []struct {
		in      string
		want    chrono.OffsetDateTime
		wantErr bool
	}{
		{
			in:   "2008-06-30T11:30+01:00",
			want: chrono.NewOffsetDateTime(civil.MustDateTime(2008, time.June, 30, 11, 30, 0, 0), plus1),
		},
		{
			in:   "2008-06-30T11:30:59.123456789Z",
			want: chrono.NewOffsetDateTime(civil.MustDateTime(2008, time.June, 30, 11, 30, 59, 123456789), zone.UTC),
		},
		{
			in:   "-0500-01-02T03:04:05-03:30",
			want: chrono.NewOffsetDateTime(civil.MustDateTime(-500, time.January, 2, 3, 4, 5, 0), zone.MustOffset(-3, -30, 0)),
		},
		{in: "2008-06-30T11:30", wantErr: true},
		{in: "2008-06-30 11:30+01:00", wantErr: true},
		{in: "2008-06-30T11:30+25:00", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := chrono.ParseOffsetDateTime(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOffsetDateTimeRoundTrip(t *testing.T) {
	for _, o := range []chrono.OffsetDateTime{
		chrono.NewOffsetDateTime(civil.MustDateTime(2008, time.June, 30, 11, 30, 59, 0), plus1),
		chrono.NewOffsetDateTime(civil.MustDateTime(2008, time.June, 30, 0, 0, 0, 1), zone.UTC),
		chrono.NewOffsetDateTime(civil.MustDateTime(-42, time.December, 31, 23, 59, 59, 999000000), zone.MustOffset(-11, 0, 0)),
	} {
		got, err := chrono.ParseOffsetDateTime(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, got, "round-trip of %q", o.String())
	}
}

func TestParseZonedDateTime(t *testing.T) {
	paris := parisZone(t)
	reg := zone.NewRegistry()
	require.NoError(t, reg.Register("Europe/Paris", paris.Rules()))

	t.Run("normal", func(t *testing.T) {
		z, err := chrono.ParseZonedDateTime("2008-06-30T11:30+02:00[Europe/Paris]", reg)
		require.NoError(t, err)
		assert.Equal(t, civil.MustDateTime(2008, time.June, 30, 11, 30, 0, 0), z.DateTime())
		assert.Equal(t, plus2, z.Offset())
		assert.Equal(t, "Europe/Paris", z.Zone().ID())
	})

	t.Run("overlap keeps parsed offset", func(t *testing.T) {
		z, err := chrono.ParseZonedDateTime("2008-10-26T02:30+02:00[Europe/Paris]", reg)
		require.NoError(t, err)
		assert.Equal(t, plus2, z.Offset())

		z, err = chrono.ParseZonedDateTime("2008-10-26T02:30+01:00[Europe/Paris]", reg)
		require.NoError(t, err)
		assert.Equal(t, plus1, z.Offset())
	})

	t.Run("invalid offset is re-resolved", func(t *testing.T) {
		z, err := chrono.ParseZonedDateTime("2008-06-30T11:30+05:00[Europe/Paris]", reg)
		require.NoError(t, err)
		assert.Equal(t, plus2, z.Offset())
	})

	t.Run("fixed zone id", func(t *testing.T) {
		z, err := chrono.ParseZonedDateTime("2008-06-30T11:30Z[UTC]", reg)
		require.NoError(t, err)
		assert.Equal(t, zone.UTC, z.Offset())
		assert.True(t, z.Zone().IsFixed())
	})

	t.Run("round trip", func(t *testing.T) {
		orig, err := chrono.ZonedDateTimeOf(civil.MustDateTime(2008, time.October, 26, 2, 30, 0, 0), paris, zone.PreTransition)
		require.NoError(t, err)
		back, err := chrono.ParseZonedDateTime(orig.String(), reg)
		require.NoError(t, err)
		assert.Equal(t, orig.DateTime(), back.DateTime())
		assert.Equal(t, orig.Offset(), back.Offset())
		assert.Equal(t, orig.Zone().ID(), back.Zone().ID())
	})

	t.Run("errors", func(t *testing.T) {
		_, err := chrono.ParseZonedDateTime("2008-06-30T11:30+02:00", reg)
		assert.Error(t, err)
		_, err = chrono.ParseZonedDateTime("2008-06-30T11:30+02:00[Mars/Olympus_Mons]", reg)
		assert.Error(t, err)
		_, err = chrono.ParseZonedDateTime("2008-06-30T11:30+02:00[Europe/Paris]", nil)
		assert.Error(t, err)
	})
}

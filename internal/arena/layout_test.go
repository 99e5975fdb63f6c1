package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSectionsDeterministic(t *testing.T) {
	a := Sections()
	b := Sections()
	require.Equal(t, a, b)
	require.Len(t, a, 80)
	require.Equal(t, "101", a[0].Name)
	require.Equal(t, "140", a[39].Name)
	require.Equal(t, "201", a[40].Name)
	require.Equal(t, "240", a[79].Name)
}

func TestTotalSeats(t *testing.T) {
	// 40 lower sections of 15x20 plus 40 upper sections of 12x16.
	require.Equal(t, 40*15*20+40*12*16, TotalSeats(Sections()))

	got := 0
	for _, s := range Sections() {
		got += s.Rows * s.SeatsPerRow
	}
	require.Equal(t, got, TotalSeats(Sections()))
}

func TestDefaultPriceCents(t *testing.T) {
	require.Equal(t, uint32(9500), DefaultPriceCents("101"))
	require.Equal(t, uint32(9500), DefaultPriceCents("140"))
	require.Equal(t, uint32(7500), DefaultPriceCents("201"))
	require.Equal(t, uint32(7500), DefaultPriceCents("240"))
	require.Equal(t, uint32(6000), DefaultPriceCents("141"))
	require.Equal(t, uint32(6000), DefaultPriceCents("999"))
	require.Equal(t, uint32(6000), DefaultPriceCents("floor"))
	require.Equal(t, uint32(6000), DefaultPriceCents(""))
}

func TestPriceConsistentWithDeclaredSections(t *testing.T) {
	for _, s := range Sections() {
		want := uint32(9500)
		if s.Tier == TierUpper {
			want = 7500
		}
		require.Equal(t, want, DefaultPriceCents(s.Name), "section %s", s.Name)
	}
}

func TestParseSeatID(t *testing.T) {
	sec, row, seat, ok := ParseSeatID("101-15-20")
	require.True(t, ok)
	require.Equal(t, "101", sec)
	require.Equal(t, 15, row)
	require.Equal(t, 20, seat)

	for _, bad := range []string{"", "101", "101-1", "101-1-1-1", "101-0-1", "101-1-0", "101-x-1", "101-1-x"} {
		_, _, _, ok := ParseSeatID(bad)
		require.False(t, ok, "input %q", bad)
	}
}

func TestContainsSeat(t *testing.T) {
	sections := Sections()
	require.True(t, ContainsSeat(sections, "101-1-1"))
	require.True(t, ContainsSeat(sections, "101-15-20"))
	require.True(t, ContainsSeat(sections, "240-12-16"))

	require.False(t, ContainsSeat(sections, "101-16-1"), "row past section limit")
	require.False(t, ContainsSeat(sections, "201-1-17"), "seat past row limit")
	require.False(t, ContainsSeat(sections, "999-9-9"), "unknown section")
	require.False(t, ContainsSeat(sections, "garbage"))
}

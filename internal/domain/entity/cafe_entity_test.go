package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAmenity(t *testing.T) {
	cases := []struct {
		in   string
		want Amenity
	}{
		{"1", AmenityYes},
		{"yes", AmenityYes},
		{"true", AmenityYes},
		{"0", AmenityNo},
		{"no", AmenityNo},
		{"false", AmenityNo},
		{"", AmenityUnknown},
		{"maybe", AmenityUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ParseAmenity(tc.in), "input %q", tc.in)
	}
}

func TestAmenityString(t *testing.T) {
	assert.Equal(t, "yes", AmenityYes.String())
	assert.Equal(t, "no", AmenityNo.String())
	assert.Equal(t, "unknown", AmenityUnknown.String())
}

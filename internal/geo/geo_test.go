package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataset_Lookups(t *testing.T) {
	d := Sample()

	states := d.States()
	require.NotEmpty(t, states)
	assert.Equal(t, "abia", states[0].ID)
	assert.Nil(t, states[0].LGAs)

	lgas := d.LGAs("lagos")
	require.Len(t, lgas, 2)
	assert.Equal(t, "ikeja", lgas[0].ID)

	wards := d.Wards("lagos", "ikeja")
	assert.Equal(t, []Ward{{ID: "w99", Name: "Anifowoshe"}, {ID: "w100", Name: "Ojodu"}, {ID: "w101", Name: "Alausa"}}, wards)

	assert.Nil(t, d.LGAs("atlantis"))
	assert.Nil(t, d.Wards("lagos", "atlantis"))
}

func TestDataset_ValidateChain(t *testing.T) {
	d := Sample()

	assert.NoError(t, d.ValidateChain("lagos", "ikeja", "w99"))

	tests := []struct {
		name             string
		state, lga, ward string
		field            string
		sentinel         error
	}{
		{"unknown state", "atlantis", "ikeja", "w99", "state", ErrUnknownState},
		{"lga from another state", "lagos", "umuahia-north", "w1", "lga", ErrUnknownLGA},
		{"ward from another lga", "lagos", "ikeja", "w102", "ward", ErrUnknownWard},
		{"empty ward", "lagos", "ikeja", "", "ward", ErrUnknownWard},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := d.ValidateChain(tc.state, tc.lga, tc.ward)

			var chainErr *ChainError
			require.ErrorAs(t, err, &chainErr)
			assert.Equal(t, tc.field, chainErr.Field)
			assert.ErrorIs(t, err, tc.sentinel)
		})
	}
}

func TestDataset_Names(t *testing.T) {
	d := Sample()

	state, lga, ward := d.Names("lagos", "mainland", "w102")
	assert.Equal(t, "Lagos", state)
	assert.Equal(t, "Lagos Mainland", lga)
	assert.Equal(t, "Yaba", ward)

	state, lga, ward = d.Names("lagos", "gone", "w1")
	assert.Equal(t, "Lagos", state)
	assert.Equal(t, "gone", lga)
	assert.Equal(t, "w1", ward)
}

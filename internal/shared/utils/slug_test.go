package utils_test

import (
	"testing"

	"catalog-backend/internal/shared/utils"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple words", "Kopi Arabika Gayo!!", "kopi-arabika-gayo"},
		{"already a slug", "gula-aren", "gula-aren"},
		{"mixed case", "Teh Hijau Premium", "teh-hijau-premium"},
		{"punctuation runs collapse", "Beras   --  Organik!!!", "beras-organik"},
		{"dots become hyphens", "foo.bar.baz", "foo-bar-baz"},
		{"digits kept", "Minyak Goreng 2L", "minyak-goreng-2l"},
		{"leading and trailing junk", "  ***Sambal Terasi***  ", "sambal-terasi"},
		{"no alphanumeric content", "!!! ---", ""},
		{"empty input", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, utils.Slugify(tt.input))
		})
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{"Kopi Arabika Gayo!!", "Gula Aren", "Minyak Goreng 2L"}

	for _, input := range inputs {
		once := utils.Slugify(input)
		twice := utils.Slugify(once)
		assert.Equal(t, once, twice, "slugifying a slug must be a no-op")
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	assert.Equal(t, utils.Slugify("Kopi"), utils.Slugify("Kopi"))
}

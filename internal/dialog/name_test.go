package dialog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractNameByRules(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantName   string
		wantSource NameSource
		wantOK     bool
	}{
		{
			name:       "nama saya adalah",
			text:       "nama saya adalah Budi Santoso",
			wantName:   "Budi Santoso",
			wantSource: NameSourceRule,
			wantOK:     true,
		},
		{
			name:       "nama saya",
			text:       "nama saya budi",
			wantName:   "budi",
			wantSource: NameSourceRule,
			wantOK:     true,
		},
		{
			name:       "panggil saja",
			text:       "panggil aku Citra",
			wantName:   "Citra",
			wantSource: NameSourceRule,
			wantOK:     true,
		},
		{
			name:       "namaku",
			text:       "namaku Doni",
			wantName:   "Doni",
			wantSource: NameSourceRule,
			wantOK:     true,
		},
		{
			name:       "trailing punctuation stripped",
			text:       "nama saya Eka.",
			wantName:   "Eka",
			wantSource: NameSourceRule,
			wantOK:     true,
		},
		{
			name:       "bare short name via catch-all",
			text:       "Budi",
			wantName:   "Budi",
			wantSource: NameSourceShortText,
			wantOK:     true,
		},
		{
			name:   "stoplist word rejected",
			text:   "oke",
			wantOK: false,
		},
		{
			name:   "catch-all rejects long input",
			text:   "saya mau tanya tentang jadwal kuliah semester ini",
			wantOK: false,
		},
		{
			name:   "single character rejected",
			text:   "a",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, source, ok := ExtractNameByRules(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantName, got)
				assert.Equal(t, tt.wantSource, source)
			}
		})
	}
}

func TestValidPersonName(t *testing.T) {
	assert.True(t, ValidPersonName("Budi Santoso"))
	assert.False(t, ValidPersonName("a"))
	assert.False(t, ValidPersonName("iya"))
	assert.False(t, ValidPersonName("terima kasih"))
	assert.False(t, ValidPersonName("satu dua tiga empat lima enam"))
	assert.False(t, ValidPersonName("teman saya budi"))
	assert.False(t, ValidPersonName("nama yang sangat panjang sekali melebihi batas"))
}

func TestContainsNamePhrase(t *testing.T) {
	assert.True(t, ContainsNamePhrase("nama saya Budi"))
	assert.True(t, ContainsNamePhrase("panggil saja aku Citra"))
	assert.True(t, ContainsNamePhrase("Panggilan ku Doni"))
	assert.False(t, ContainsNamePhrase("berapa spp informatika"))
}

func TestFilterModelPersonName(t *testing.T) {
	name, ok := FilterModelPersonName([]string{"Budi Santoso"}, "kenalkan, Budi Santoso")
	assert.True(t, ok)
	assert.Equal(t, "Budi Santoso", name)

	// Honorifics and roles never pass.
	_, ok = FilterModelPersonName([]string{"bapak"}, "bapak")
	assert.False(t, ok)

	// A candidate right next to an intro phrase is skipped: the model
	// probably captured part of the phrase.
	_, ok = FilterModelPersonName([]string{"saya Budi"}, "nama saya Budi")
	assert.False(t, ok)

	// First usable candidate wins.
	name, ok = FilterModelPersonName([]string{"ku", "Citra"}, "kenalkan Citra teman baru")
	assert.True(t, ok)
	assert.Equal(t, "Citra", name)
}

func TestCanonicalName(t *testing.T) {
	assert.Equal(t, "Budi", CanonicalName("budi"))
	assert.Equal(t, "Budi Santoso", CanonicalName(" budi santoso "))
	assert.Equal(t, "Citra", CanonicalName("CITRA"))
}

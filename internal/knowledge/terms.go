package knowledge

// ProdiTerms maps each canonical study program name to the surface
// forms students actually type. Matching is case-insensitive on whole
// words; longer variants should be listed so the matcher can prefer
// them over short ambiguous ones.
var ProdiTerms = map[string][]string{
	"Teknik Informatika": {
		"teknik informatika", "informatika", "prodi informatika",
		"jurusan informatika", "ilmu komputer", "ilkom", "ti", "if",
		"computer science",
	},
	"Teknik Sipil": {
		"teknik sipil", "sipil", "prodi sipil", "jurusan sipil",
		"civil engineering", "ts",
	},
	"Teknik Pertambangan": {
		"teknik pertambangan", "pertambangan", "prodi pertambangan",
		"jurusan pertambangan", "tambang", "tp",
	},
}

// LabTerms maps each canonical laboratory name to its surface forms.
var LabTerms = map[string][]string{
	"Laboratorium Komputer": {
		"laboratorium komputer", "lab komputer", "labkom", "lab software",
		"laboratorium software", "lab pemrograman",
	},
	"Laboratorium Jaringan Komputer": {
		"laboratorium jaringan komputer", "lab jaringan", "lab jarkom",
		"laboratorium jaringan", "lab networking",
	},
	"Laboratorium Mekanika Tanah": {
		"laboratorium mekanika tanah", "lab mekanika tanah", "lab mektan",
		"lab tanah",
	},
	"Laboratorium Struktur dan Bahan": {
		"laboratorium struktur dan bahan", "lab struktur", "lab bahan",
		"lab beton", "laboratorium struktur",
	},
	"Laboratorium Hidrolika": {
		"laboratorium hidrolika", "lab hidrolika", "lab hidro",
	},
	"Laboratorium Geologi": {
		"laboratorium geologi", "lab geologi",
	},
	"Laboratorium Pengolahan Bahan Galian": {
		"laboratorium pengolahan bahan galian", "lab pengolahan bahan galian",
		"lab pbg", "lab bahan galian",
	},
}

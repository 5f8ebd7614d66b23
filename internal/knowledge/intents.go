package knowledge

// IntentDescriptions maps disambiguation-eligible intents to the short
// Indonesian description shown when the assistant asks the user to
// pick between close candidates. Intents missing from this table are
// never offered as clarification options.
var IntentDescriptions = map[string]string{
	"info_spp_ft":              "Informasi biaya SPP (kuliah per semester)",
	"info_biaya_pmb":           "Informasi biaya awal terkait pendaftaran mahasiswa baru (PMB)",
	"jadwal_kuliah_ft":         "Informasi jadwal kuliah",
	"info_krs_sevima":          "Panduan atau informasi pengisian KRS",
	"cara_bayar_spp_ft":        "Cara umum pembayaran SPP/UKT",
	"cara_daftar_pmb":          "Langkah-langkah pendaftaran mahasiswa baru",
	"info_prodi_informatika":   "Informasi umum tentang Prodi Teknik Informatika",
	"info_prodi_sipil":         "Informasi umum tentang Prodi Teknik Sipil",
	"info_prodi_pertambangan":  "Informasi umum tentang Prodi Teknik Pertambangan",
	"tanya_biaya_praktikum":    "Informasi biaya praktikum di laboratorium",
	"tanya_pembelajaran_prodi": "Gambaran materi yang dipelajari di suatu prodi",
	"tanya_pembelajaran_lab":   "Gambaran materi yang dipraktikkan di suatu laboratorium",
}

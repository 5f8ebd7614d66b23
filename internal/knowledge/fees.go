package knowledge

// CurrentSPPPeriod is the enrollment period whose tuition is quoted
// when the user does not ask about a specific one.
const CurrentSPPPeriod = "2023-2024"

// SPPFees lists per-semester tuition (SPP/UKT) per study program and
// enrollment period. Amounts are in Rupiah.
var SPPFees = []SPPFee{
	{
		Prodi: "Teknik Informatika",
		Periods: map[string]int64{
			"2018-2022": 1250000,
			"2023-2024": 1500000,
		},
	},
	{
		Prodi: "Teknik Sipil",
		Periods: map[string]int64{
			"2018-2022": 1250000,
			"2023-2024": 1400000,
		},
	},
	{
		Prodi: "Teknik Pertambangan",
		Periods: map[string]int64{
			"2018-2022": 1300000,
			"2023-2024": 1550000,
		},
	},
}

// PracticumFees lists laboratory practicum fees. The DefaultFeeKey
// entry covers laboratories without a specific record.
var PracticumFees = map[string]PracticumFee{
	DefaultFeeKey: {
		Amount:     150000,
		ExamAmount: 50000,
		Notes:      "Biaya dapat berubah, mohon konfirmasi ke lab/akademik.",
	},
	"Laboratorium Komputer": {
		Amount:     175000,
		ExamAmount: 50000,
		Notes:      "Sudah termasuk modul praktikum.",
	},
	"Laboratorium Jaringan Komputer": {
		Amount:     200000,
		ExamAmount: 50000,
		Notes:      "Termasuk pemakaian perangkat jaringan di lab.",
	},
	"Laboratorium Mekanika Tanah": {
		Amount:     225000,
		ExamAmount: 0,
		Notes:      "Termasuk bahan uji sampel tanah.",
	},
	"Laboratorium Struktur dan Bahan": {
		Amount:     250000,
		ExamAmount: 75000,
		Notes:      "Termasuk material benda uji beton.",
	},
	"Laboratorium Geologi": {
		Amount:     200000,
		ExamAmount: 50000,
		Notes:      "Termasuk peralatan deskripsi batuan.",
	},
}

// PMB is everything the assistant knows about new-student admission.
var PMB = PMBInfo{
	Website: "https://pmb.unanda.ac.id",
	Contact: "Panitia PMB UNANDA, WhatsApp 0821-xxxx-xxxx",
	Tracks: []PMBTrack{
		{
			Name:        "Jalur Reguler",
			Description: "Seleksi berdasarkan nilai rapor dan tes tertulis, dibuka dalam beberapa gelombang.",
		},
		{
			Name:        "Jalur Prestasi",
			Description: "Seleksi tanpa tes bagi calon mahasiswa dengan prestasi akademik atau non-akademik.",
		},
		{
			Name:        "Jalur Transfer",
			Description: "Penerimaan mahasiswa pindahan atau lanjutan dari jenjang diploma.",
		},
	},
	Fees: []PMBFee{
		{
			Name:   "Biaya Pendaftaran",
			Amount: 250000,
			Notes:  "Dibayar sekali saat pembelian formulir pendaftaran.",
		},
		{
			Name:   "Biaya Orientasi Mahasiswa Baru",
			Amount: 350000,
			Notes:  "Mencakup kegiatan pengenalan kampus dan atribut.",
		},
		{
			Name:   "Biaya Almamater",
			Amount: 300000,
			Notes:  "Jas almamater dan perlengkapan mahasiswa baru.",
		},
	},
	GeneralSteps: []string{
		"Kunjungi website PMB resmi dan buat akun pendaftaran.",
		"Isi formulir pendaftaran online dengan data diri yang benar.",
		"Unggah dokumen persyaratan (ijazah/SKL, rapor, pas foto, identitas).",
		"Bayar biaya pendaftaran sesuai petunjuk di portal.",
		"Ikuti seleksi sesuai jalur yang dipilih (tes atau verifikasi berkas).",
		"Cek pengumuman kelulusan di portal PMB.",
		"Lakukan registrasi ulang dan pembayaran biaya awal jika dinyatakan lulus.",
	},
}

package nlu

// trainingUtterances is the example corpus behind the keyword
// classifier. Each intent lists utterances students actually type;
// the BM25 index treats every utterance as one document.
var trainingUtterances = map[string][]string{
	"greeting_ft": {
		"halo",
		"hai kak",
		"selamat pagi",
		"selamat siang min",
		"permisi mau tanya",
		"halo bot",
	},
	"goodbye_ft": {
		"sampai jumpa",
		"dadah",
		"oke sudah dulu",
		"terima kasih sampai nanti",
		"bye",
	},
	"thankyou_ft": {
		"terima kasih",
		"makasih infonya",
		"makasih banyak kak",
		"oke makasih",
		"thanks ya",
	},
	"ask_bot_identity": {
		"kamu siapa",
		"ini bot apa",
		"kamu bisa bantu apa saja",
		"fungsi chatbot ini apa",
		"siapa yang saya ajak bicara",
	},
	"info_spp_ft": {
		"berapa spp teknik informatika",
		"biaya spp per semester berapa",
		"info biaya kuliah prodi sipil",
		"ukt pertambangan berapa ya",
		"berapa uang semester di fakultas teknik",
		"spp angkatan 2023 berapa",
	},
	"cara_bayar_spp_ft": {
		"cara bayar spp gimana",
		"bagaimana cara pembayaran ukt",
		"bayar spp lewat mana",
		"metode pembayaran uang kuliah",
	},
	"cara_bayar_sevima_tokopedia": {
		"cara bayar sevima tokopedia",
		"panduan bayar spp lewat tokopedia",
		"bayar uang kuliah via tokopedia gimana",
		"cara pakai sevima pay di tokopedia",
	},
	"info_krs_sevima": {
		"cara mengisi krs di sevima",
		"panduan pengisian krs",
		"gimana cara krs an di siakad",
		"kontrak mata kuliah lewat sevima gimana",
		"cara ambil mata kuliah semester baru",
	},
	"jadwal_kuliah_ft": {
		"jadwal kuliah teknik informatika",
		"jadwal matkul hari senin",
		"kapan jadwal kuliah semester ini keluar",
		"roster kuliah sipil",
		"jadwal kelas pertambangan",
	},
	"info_biaya_umum": {
		"berapa biaya kuliah di fakultas teknik",
		"info biaya",
		"biaya di unanda berapa",
		"mau tanya soal biaya",
	},
	"info_pmb_umum": {
		"info pendaftaran mahasiswa baru",
		"pmb unanda gimana",
		"kapan penerimaan mahasiswa baru dibuka",
		"info pmb fakultas teknik",
		"mau daftar kuliah di unanda",
	},
	"info_jalur_pmb": {
		"jalur pendaftaran apa saja",
		"ada jalur prestasi tidak",
		"jalur masuk unanda apa saja",
		"seleksi pmb lewat jalur apa",
	},
	"info_biaya_pmb": {
		"biaya pendaftaran mahasiswa baru berapa",
		"berapa biaya formulir pmb",
		"rincian biaya awal masuk kuliah",
		"biaya daftar ulang maba",
	},
	"cara_daftar_pmb": {
		"cara daftar jadi mahasiswa baru",
		"langkah langkah pendaftaran pmb",
		"gimana cara daftar kuliah online",
		"prosedur pendaftaran maba",
	},
	"info_prodi_informatika": {
		"info prodi teknik informatika",
		"tentang jurusan informatika",
		"prodi ti itu seperti apa",
		"profil teknik informatika unanda",
	},
	"info_prodi_sipil": {
		"info prodi teknik sipil",
		"tentang jurusan sipil",
		"profil teknik sipil unanda",
	},
	"info_prodi_pertambangan": {
		"info prodi teknik pertambangan",
		"tentang jurusan tambang",
		"profil teknik pertambangan unanda",
	},
	"tanya_biaya_praktikum": {
		"berapa biaya praktikum",
		"biaya lab komputer berapa",
		"biaya praktikum laboratorium jaringan",
		"bayar praktikum berapa per semester",
		"biaya ujian akhir praktikum",
	},
	"tanya_pembelajaran_prodi": {
		"apa yang dipelajari di teknik informatika",
		"materi kuliah prodi sipil apa saja",
		"di jurusan tambang belajar apa",
		"gambaran pembelajaran di prodi",
	},
	"tanya_pembelajaran_lab": {
		"apa yang dipelajari di lab komputer",
		"praktikum apa saja di lab jaringan",
		"materi di laboratorium mekanika tanah",
		"di lab geologi ngapain aja",
	},
	"kontak_ft": {
		"kontak tata usaha fakultas teknik",
		"nomor telepon tu ft",
		"cara menghubungi akademik",
		"alamat kantor fakultas teknik",
	},
	"fasilitas_umum_ft": {
		"fasilitas apa saja di fakultas teknik",
		"ada wifi di kampus tidak",
		"fasilitas gedung ft",
	},
	"info_lab_ft": {
		"info lab fakultas teknik",
		"laboratorium apa saja yang ada",
		"info lab informatika",
		"lab di teknik sipil apa saja",
		"fasilitas laboratorium pertambangan",
	},
}

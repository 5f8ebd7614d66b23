package knowledge

// TUContact is the administrative office contact line.
const TUContact = "Anda bisa menghubungi Tata Usaha (TU) Fakultas Teknik di Gedung FT Lantai 2, " +
	"Ruangan Akademik. Atau cek kontak resmi di website fakultas."

// KRSSevimaGuide is the step-by-step guide for filling the study plan
// (KRS) in the Sevima/SIAKAD Cloud academic system.
const KRSSevimaGuide = `1. Login ke portal Sevima/SIAKAD Cloud dengan akun mahasiswa Anda.
2. Buka menu Akademik lalu pilih Kartu Rencana Studi (KRS).
3. Pastikan periode semester yang aktif sudah benar.
4. Pilih mata kuliah yang akan diambil sesuai kurikulum dan semester Anda.
5. Periksa total SKS agar tidak melebihi batas yang diizinkan.
6. Simpan KRS, lalu ajukan untuk persetujuan Dosen Pembimbing Akademik (PA).
7. Pantau status KRS sampai disetujui; hubungi Dosen PA jika tertunda.`

// PaymentTokopediaGuide is the guide for paying tuition through Sevima
// Pay on the Tokopedia platform.
const PaymentTokopediaGuide = `1. Buka aplikasi Tokopedia dan cari menu Top-Up & Tagihan.
2. Pilih Biaya Pendidikan, lalu cari "Sevima Pay".
3. Masukkan kode pembayaran atau NIM sesuai tagihan di portal SIAKAD.
4. Periksa nama dan jumlah tagihan yang muncul sebelum membayar.
5. Selesaikan pembayaran dengan metode yang tersedia.
6. Simpan bukti pembayaran dan cek status tagihan di portal SIAKAD.`

// ScheduleLinks maps each study program to its published schedule
// document. An empty value means no link has been published yet.
var ScheduleLinks = map[string]string{
	"Teknik Informatika":  "https://teknik.unanda.ac.id/jadwal/ti",
	"Teknik Sipil":        "https://teknik.unanda.ac.id/jadwal/sipil",
	"Teknik Pertambangan": "https://teknik.unanda.ac.id/jadwal/tambang",
}

// ProdiLinks maps each study program to its profile page.
var ProdiLinks = map[string]string{
	"Teknik Informatika":  "https://teknik.unanda.ac.id/teknik-informatika",
	"Teknik Sipil":        "https://teknik.unanda.ac.id/teknik-sipil",
	"Teknik Pertambangan": "https://teknik.unanda.ac.id/teknik-pertambangan",
}

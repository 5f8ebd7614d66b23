package knowledge

// LearningContent describes what each study program teaches and what
// its laboratories focus on. Display order follows this slice.
var LearningContent = []ProdiLearning{
	{
		Prodi: "Teknik Informatika",
		Summary: "Mempelajari dasar-dasar ilmu komputer, pengembangan perangkat lunak (software), " +
			"jaringan komputer, kecerdasan buatan, dan manajemen data.",
		Labs: []LabLearning{
			{
				Lab: "Laboratorium Komputer",
				Description: "Praktikum algoritma dan pemrograman, struktur data, basis data, " +
					"serta pengembangan aplikasi desktop dan web.",
			},
			{
				Lab: "Laboratorium Jaringan Komputer",
				Description: "Konfigurasi perangkat jaringan, routing dan switching, administrasi " +
					"server, serta dasar keamanan jaringan.",
			},
		},
	},
	{
		Prodi: "Teknik Sipil",
		Summary: "Fokus pada perancangan, pembangunan, dan pemeliharaan infrastruktur seperti " +
			"gedung, jembatan, jalan, dan sistem air.",
		Labs: []LabLearning{
			{
				Lab: "Laboratorium Mekanika Tanah",
				Description: "Pengujian sifat fisik dan mekanik tanah, daya dukung, serta " +
					"penyelidikan tanah untuk pondasi.",
			},
			{
				Lab: "Laboratorium Struktur dan Bahan",
				Description: "Pengujian material konstruksi seperti beton dan baja, termasuk uji " +
					"kuat tekan dan kuat tarik.",
			},
			{
				Lab: "Laboratorium Hidrolika",
				Description: "Percobaan aliran air pada saluran terbuka dan tertutup untuk " +
					"perencanaan irigasi dan drainase.",
			},
		},
	},
	{
		Prodi: "Teknik Pertambangan",
		Summary: "Berkaitan dengan eksplorasi, penambangan (ekstraksi), dan pengolahan sumber " +
			"daya mineral dan batubara secara efisien dan aman.",
		Labs: []LabLearning{
			{
				Lab: "Laboratorium Geologi",
				Description: "Identifikasi mineral dan batuan, pemetaan geologi, serta analisis " +
					"data eksplorasi.",
			},
			{
				Lab: "Laboratorium Pengolahan Bahan Galian",
				Description: "Proses peremukan, penggerusan, dan pemisahan mineral berharga dari " +
					"bahan galian hasil tambang.",
			},
			{
				// Shared with Teknik Informatika for computation courses.
				Lab: "Laboratorium Komputer",
				Description: "Praktikum perangkat lunak tambang untuk pemodelan cadangan dan " +
					"perencanaan tambang.",
			},
		},
	},
}

package response

import (
	"fmt"
	"strings"

	"github.com/unanda-ft/faqbot/internal/knowledge"
)

// Generate renders the reply for one recognized intent. The caller has
// already filtered out-of-scope and low-confidence turns, so every
// input here carries a known intent.
func (g *Generator) Generate(in Input) Reply {
	switch in.Intent {
	case "greeting_ft":
		return g.greeting(in)
	case "goodbye_ft":
		return g.goodbye(in)
	case "thankyou_ft":
		return g.thankyou(in)
	case "ask_bot_identity":
		return g.botIdentity()
	case "info_biaya_umum":
		return g.disambiguateCost(in)
	case "info_spp_ft":
		return g.sppInfo(in)
	case "cara_bayar_spp_ft":
		return g.paymentOverview(in)
	case "cara_bayar_sevima_tokopedia":
		return g.paymentTokopedia(in)
	case "info_krs_sevima":
		return g.krsGuide(in)
	case "jadwal_kuliah_ft":
		return g.scheduleLinks(in)
	case "fasilitas_umum_ft":
		return g.facilities(in)
	case "info_lab_ft":
		return g.labInfo(in)
	case "info_prodi_informatika", "info_prodi_sipil", "info_prodi_pertambangan":
		return g.prodiInfo(in)
	case "tanya_biaya_praktikum":
		return g.practicumFee(in)
	case "kontak_ft":
		return g.contact(in)
	case "info_pmb_umum":
		return g.pmbOverview(in)
	case "info_jalur_pmb":
		return g.pmbTracks(in)
	case "info_biaya_pmb":
		return g.pmbFees(in)
	case "cara_daftar_pmb":
		return g.pmbSteps(in)
	case "tanya_pembelajaran_prodi":
		return g.prodiLearning(in)
	case "tanya_pembelajaran_lab":
		return g.labLearning(in)
	}
	if in.Lab != "" {
		// A laboratory mention without a more specific intent still gets
		// the general lab answer.
		return g.labInfo(in)
	}
	return g.unhandled(in)
}

func (g *Generator) greeting(in Input) Reply {
	safe := safeUserName(in.UserName)
	var text string
	if safe != "" {
		text = g.choose(
			fmt.Sprintf("Halo lagi %s! Ada lagi yang bisa saya bantu?", safe),
			fmt.Sprintf("Hai %s! Senang bertemu Anda lagi.", safe),
			fmt.Sprintf("Ya %s, ada keperluan apa lagi?", safe),
		)
	} else {
		text = g.choose(
			"Halo! Ada yang bisa saya bantu?",
			"Hai! Selamat datang di chatbot Fakultas Teknik UNANDA.",
			"Salam! Ada yang ingin ditanyakan seputar Fakultas Teknik?",
		)
	}
	return Reply{Text: text, Category: "greeting_ft_handled"}
}

func (g *Generator) goodbye(in Input) Reply {
	text := g.choose(
		fmt.Sprintf("%s, sampai jumpa!", sapaanAwal(in.UserName)),
		"Sampai jumpa!",
		"Senang bisa membantu. Jika ada lagi, jangan ragu bertanya.",
		"Terima kasih telah bertanya!",
	)
	return Reply{Text: text, Category: "goodbye_ft_handled"}
}

func (g *Generator) thankyou(in Input) Reply {
	first := "Sama-sama!"
	if safe := safeUserName(in.UserName); safe != "" {
		first = fmt.Sprintf("Sama-sama, %s!", safe)
	}
	text := g.choose(
		first,
		"Dengan senang hati!",
		"Tidak masalah!",
		"Senang bisa membantu!",
	)
	return Reply{Text: text, Category: "thankyou_ft_handled"}
}

func (g *Generator) botIdentity() Reply {
	return Reply{
		Text: "Saya adalah chatbot Fakultas Teknik Universitas Andi Djemma. " +
			"Saya dirancang untuk membantu memberikan informasi seputar fakultas, " +
			"Penerimaan Mahasiswa Baru (PMB), biaya kuliah (SPP, praktikum), " +
			"informasi prodi & lab, jadwal kuliah, panduan KRS dan pembayaran, serta kontak. " +
			"Ada yang bisa saya bantu?",
		Category: "ask_bot_identity_handled",
	}
}

func (g *Generator) disambiguateCost(in Input) Reply {
	text := fmt.Sprintf("%s. Saya bisa bantu informasi biaya di Fakultas Teknik. "+
		"Jenis biaya apa yang spesifik Anda maksud?\n\n"+
		"1. **SPP** (Biaya kuliah per semester)\n"+
		"2. **Praktikum/Laboratorium** (Biaya kegiatan di lab)\n"+
		"3. **Pendaftaran Mahasiswa Baru (PMB)** (Biaya formulir, tes, orientasi awal, dll.)\n\n"+
		"Silakan sebutkan jenisnya (misal: 'info SPP', 'biaya praktikum', atau 'biaya PMB').",
		sapaanAwal(in.UserName))
	return Reply{Text: text, Category: "disambiguate_cost"}
}

func (g *Generator) sppInfo(in Input) Reply {
	awal := sapaanAwal(in.UserName)
	tengah := sapaanTengah(in.UserName)
	current := g.kb.CurrentSPPPeriod

	if in.Prodi == "" {
		options := g.kb.SPPProdiOptions()
		if len(options) == 0 {
			return Reply{
				Text:     fmt.Sprintf("Maaf %sdata SPP tidak dapat dimuat atau belum terisi dengan prodi yang valid. Mohon hubungi bagian akademik/keuangan.", tengah),
				Category: "fallback_spp_no_data",
			}
		}
		text := fmt.Sprintf("%s, untuk memberikan info SPP yang tepat, mohon sebutkan nama program studinya. "+
			"Pilihan yang ada di data saya: **%s**.\nContoh: 'berapa spp %s'",
			awal, strings.Join(options, ", "), options[g.pick(len(options))])
		return Reply{Text: text, Category: "prompt_for_prodi_spp"}
	}

	fee, ok := g.kb.SPPForProdi(in.Prodi)
	if !ok {
		var b strings.Builder
		fmt.Fprintf(&b, "%s, mohon maaf, data SPP spesifik untuk prodi '%s' belum tersedia atau tidak valid di data saya. ", awal, in.Prodi)
		fmt.Fprintf(&b, "\nBerikut adalah ringkasan biaya SPP (UKT) per semester Fakultas Teknik yang berlaku saat ini (periode %s) untuk prodi lain:\n", current)
		found := false
		for _, other := range g.kb.SPP {
			if amount, ok := other.Periods[current]; ok {
				fmt.Fprintf(&b, "\n- **%s**: %s", other.Prodi, knowledge.FormatIDR(amount))
				found = true
			}
		}
		if !found {
			return Reply{
				Text:     fmt.Sprintf("Maaf %ssaya belum memiliki informasi detail biaya SPP saat ini untuk prodi manapun. Silakan hubungi bagian akademik/keuangan.", tengah),
				Category: "fallback_spp_prodi_not_found",
			}
		}
		b.WriteString("\n\nUntuk info SPP prodi lain, silakan sebutkan nama prodinya.")
		return Reply{Text: b.String(), Category: "fallback_spp_prodi_not_found"}
	}

	target := detectPeriod(strings.ToLower(in.Text))
	explicit := target != ""
	if target == "" {
		target = current
	}

	amount, haveAmount := fee.Periods[target]
	if !haveAmount {
		var b strings.Builder
		fmt.Fprintf(&b, "Maaf %ssaya tidak memiliki data SPP untuk prodi **%s** pada periode **%s**. ", tengah, in.Prodi, target)
		if latest, ok := fee.Periods[current]; ok {
			fmt.Fprintf(&b, "Biaya SPP yang berlaku saat ini (periode %s) untuk **%s** adalah **%s** per semester.", current, in.Prodi, knowledge.FormatIDR(latest))
		} else {
			fmt.Fprintf(&b, "Informasi SPP terbaru untuk **%s** juga belum tersedia di data saya.", in.Prodi)
		}
		return Reply{Text: b.String(), Category: "info_spp_ft_handled"}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s, biaya SPP/UKT untuk prodi **%s** periode **%s** adalah **%s** per semester.",
		awal, in.Prodi, target, knowledge.FormatIDR(amount))
	if !explicit && target == current {
		b.WriteString(" (Ini adalah biaya SPP yang berlaku saat ini).")
	} else if explicit && target != current {
		if latest, ok := fee.Periods[current]; ok {
			fmt.Fprintf(&b, "\nSebagai info, biaya SPP terbaru (periode %s) untuk prodi ini adalah **%s** per semester.", current, knowledge.FormatIDR(latest))
		}
	}
	return Reply{Text: b.String(), Category: "info_spp_ft_handled"}
}

// detectPeriod maps period keywords in the question to an SPP period
// key, or empty when the question names no period.
func detectPeriod(lowered string) string {
	for _, kw := range []string{"2023", "2024", "terbaru", "sekarang", "saat ini"} {
		if strings.Contains(lowered, kw) {
			return "2023-2024"
		}
	}
	for _, kw := range []string{"2018", "2019", "2020", "2021", "2022", "lama", "dulu"} {
		if strings.Contains(lowered, kw) {
			return "2018-2022"
		}
	}
	return ""
}

func (g *Generator) paymentOverview(in Input) Reply {
	text := fmt.Sprintf("%s. Untuk pembayaran SPP/UKT (setelah Anda resmi menjadi mahasiswa), "+
		"biasanya dilakukan melalui sistem akademik online Sevima/SIAKAD Cloud. "+
		"Apakah Anda ingin tahu:\n"+
		"1. **Panduan bayar via Tokopedia** (jika tersedia)?\n"+
		"2. **Informasi metode pembayaran lain** (misal transfer bank)?\n"+
		"3. **Batas waktu pembayaran** semester ini?\n\n"+
		"Mohon konfirmasi ke bagian keuangan atau cek pengumuman resmi fakultas/universitas "+
		"untuk detail metode pembayaran yang valid dan jadwalnya.",
		sapaanAwal(in.UserName))
	if strings.TrimSpace(g.kb.PaymentGuide) != "" {
		text += "\n\nJika ingin panduan pembayaran via Tokopedia, ketik 'cara bayar sevima tokopedia'."
	}
	return Reply{Text: text, Category: "cara_bayar_spp_ft_prompt"}
}

func (g *Generator) paymentTokopedia(in Input) Reply {
	if strings.TrimSpace(g.kb.PaymentGuide) == "" {
		return Reply{
			Text: fmt.Sprintf("Maaf %s, panduan spesifik pembayaran via Tokopedia belum tersedia di data saya. "+
				"Silakan cek pengumuman resmi dari bagian keuangan atau universitas mengenai metode pembayaran yang tersedia.",
				strings.TrimSuffix(sapaanTengah(in.UserName), ", ")),
			Category: "fallback_payment_guide_missing",
		}
	}
	text := fmt.Sprintf("%s, ini panduan umum membayar uang kuliah melalui Sevima Pay "+
		"di platform Tokopedia:\n\n%s\n\n"+
		"**Penting:** Pastikan Anda mengikuti langkah-langkah ini dengan benar, "+
		"memilih tagihan yang sesuai, dan membayar sebelum batas waktu yang ditentukan. "+
		"Simpan bukti pembayaran Anda.",
		sapaanAwal(in.UserName), g.kb.PaymentGuide)
	return Reply{Text: text, Category: "cara_bayar_sevima_tokopedia_handled"}
}

func (g *Generator) krsGuide(in Input) Reply {
	if strings.TrimSpace(g.kb.KRSGuide) == "" {
		return Reply{
			Text: fmt.Sprintf("Maaf %s, panduan pengisian KRS via Sevima belum tersedia di data saya. "+
				"Secara umum, Anda perlu login ke sistem SIAKAD/Sevima pada jadwal yang ditentukan, "+
				"memilih mata kuliah yang akan diambil sesuai dengan semester dan kurikulum Anda, "+
				"lalu menyimpannya. Pastikan status KRS Anda disetujui oleh Dosen PA. "+
				"Untuk panduan detail, silakan cek sumber informasi resmi dari kampus.",
				strings.TrimSuffix(sapaanTengah(in.UserName), ", ")),
			Category: "fallback_krs_guide_missing",
		}
	}
	text := fmt.Sprintf("%s, berikut panduan umum pengisian Kartu Rencana Studi (KRS) "+
		"di sistem Sevima/SIAKAD Cloud:\n\n%s\n\n"+
		"**Ingat:** Selalu perhatikan **jadwal resmi pengisian KRS** yang dikeluarkan oleh fakultas/universitas. "+
		"Jika ada mata kuliah yang tidak muncul, error, atau Anda ragu, segera konsultasikan "+
		"dengan **Dosen Pembimbing Akademik (PA)** Anda atau bagian akademik.",
		sapaanAwal(in.UserName), g.kb.KRSGuide)
	return Reply{Text: text, Category: "info_krs_sevima_handled"}
}

func (g *Generator) scheduleLinks(in Input) Reply {
	var links []string
	for _, prodi := range []string{"Teknik Informatika", "Teknik Sipil", "Teknik Pertambangan"} {
		if in.Prodi != "" && prodi != in.Prodi {
			continue
		}
		if link := g.kb.ScheduleLinks[prodi]; link != "" {
			links = append(links, fmt.Sprintf("- **%s**: %s", prodi, link))
		}
	}
	if in.Prodi != "" && len(links) == 0 {
		// No link for the asked program, offer the rest.
		for _, prodi := range []string{"Teknik Informatika", "Teknik Sipil", "Teknik Pertambangan"} {
			if link := g.kb.ScheduleLinks[prodi]; link != "" && prodi != in.Prodi {
				links = append(links, fmt.Sprintf("- **%s**: %s", prodi, link))
			}
		}
	}
	if general := g.kb.ScheduleLinks["Fakultas Teknik"]; general != "" {
		links = append(links, fmt.Sprintf("- **Umum Fakultas**: %s", general))
	}

	if len(links) == 0 {
		return Reply{
			Text: fmt.Sprintf("Maaf %s, saya belum memiliki data atau link jadwal kuliah yang bisa dibagikan saat ini. "+
				"Silakan cek pengumuman resmi dari prodi Anda, grup mahasiswa, atau sistem Sevima/SIAKAD. "+
				"Jadwal biasanya keluar mendekati awal semester.",
				strings.TrimSuffix(sapaanTengah(in.UserName), ", ")),
			Category: "fallback_jadwal_links_missing",
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s. Untuk jadwal kuliah Fakultas Teknik semester ini, ", sapaanAwal(in.UserName))
	if in.Prodi != "" {
		fmt.Fprintf(&b, "khususnya untuk **%s**, ", in.Prodi)
	}
	b.WriteString("berikut link jadwal yang mungkin relevan:\n")
	b.WriteString(strings.Join(links, "\n"))
	b.WriteString("\n\nJadwal biasanya dibagikan oleh masing-masing prodi. Anda juga bisa cek pengumuman di grup mahasiswa atau sistem Sevima/SIAKAD.")
	return Reply{Text: b.String(), Category: "jadwal_kuliah_ft_links_provided"}
}

func (g *Generator) facilities(in Input) Reply {
	text := fmt.Sprintf("%s. Fasilitas umum yang tersedia di lingkungan Fakultas Teknik UNANDA antara lain:\n"+
		"- Ruang kuliah yang dilengkapi AC dan LCD Proyektor.\n"+
		"- Jaringan WiFi di beberapa area kampus.\n"+
		"- Perpustakaan fakultas/universitas.\n"+
		"- Laboratorium komputer dan laboratorium spesifik per prodi.\n"+
		"- Area diskusi mahasiswa.\n"+
		"- Kantin atau area jajan terdekat.\n"+
		"- Mushola/Tempat ibadah.\n"+
		"- Toilet.\n\n"+
		"Untuk detail fasilitas laboratorium spesifik prodi, Anda bisa tanyakan misalnya 'info lab informatika'.",
		sapaanAwal(in.UserName))
	return Reply{Text: text, Category: "fasilitas_umum_ft_handled"}
}

func (g *Generator) labInfo(in Input) Reply {
	awal := sapaanAwal(in.UserName)
	parts := []string{fmt.Sprintf("%s. Mengenai laboratorium di Fakultas Teknik:", awal)}

	targetProdi := in.Prodi
	if in.Lab != "" && targetProdi == "" {
		if owners, _, _ := g.kb.LabOwners(in.Lab, ""); len(owners) > 0 {
			targetProdi = owners[0]
		}
	}

	if targetProdi != "" {
		learning, ok := g.kb.LearningForProdi(targetProdi)
		if !ok || len(learning.Labs) == 0 {
			parts = append(parts, fmt.Sprintf("  Maaf, daftar laboratorium spesifik untuk Prodi %s belum tersedia di data saya.", targetProdi))
			return Reply{Text: strings.Join(parts, "\n"), Category: "fallback_lab_list_missing"}
		}
		parts = append(parts, fmt.Sprintf("\n**Untuk Prodi %s:**", targetProdi))

		if in.Lab != "" {
			parts = append(parts, fmt.Sprintf("- Fokus pada: **%s**.", in.Lab))
			parts = append(parts, g.labFeeLine(in.Lab))
			if _, desc, _ := g.kb.LabOwners(in.Lab, targetProdi); desc != "" {
				parts = append(parts, fmt.Sprintf("  Anda bisa tanya 'apa yang dipelajari di %s?'", in.Lab))
			}
			return Reply{Text: strings.Join(parts, "\n"), Category: "info_lab_specific_handled"}
		}

		names := make([]string, len(learning.Labs))
		for i, lab := range learning.Labs {
			names[i] = lab.Lab
		}
		parts = append(parts, fmt.Sprintf("  Terdapat beberapa laboratorium utama, antara lain: **%s**.", strings.Join(names, ", ")))
		parts = append(parts, g.defaultFeeLine())
		parts = append(parts, "  Anda bisa tanya info lebih detail tentang lab spesifik (misal: 'info lab komputer' atau 'biaya lab hidrolika').")
		return Reply{Text: strings.Join(parts, "\n"), Category: "info_lab_prodi_list_handled"}
	}

	labs := g.kb.LabsWithLearningDesc()
	if len(labs) == 0 {
		parts = append(parts, "\nMaaf, informasi umum mengenai laboratorium belum tersedia saat ini.")
		return Reply{Text: strings.Join(parts, "\n"), Category: "fallback_lab_terms_missing"}
	}
	display := labs
	if len(display) > 5 {
		display = display[:5]
	}
	suffix := "."
	if len(labs) > len(display) {
		suffix = "..."
	}
	parts = append(parts, "\nFakultas Teknik memiliki berbagai laboratorium untuk mendukung pembelajaran.")
	parts = append(parts, fmt.Sprintf("Beberapa di antaranya: **%s**%s", strings.Join(display, ", "), suffix))
	parts = append(parts, g.defaultFeeLine())
	parts = append(parts, "\nApakah ada laboratorium spesifik atau dari prodi tertentu yang ingin Anda ketahui lebih lanjut? (Contoh: 'info lab sipil' atau 'lab komputer')")
	return Reply{Text: strings.Join(parts, "\n"), Category: "info_lab_general_prompt"}
}

func (g *Generator) labFeeLine(lab string) string {
	fee, _, ok := g.kb.PracticumFeeFor(lab)
	if !ok {
		return "  Informasi biaya spesifik lab ini belum tersedia."
	}
	line := fmt.Sprintf("  Biaya praktikum: %s.", feeComponents(fee))
	if fee.Notes != "" {
		line += fmt.Sprintf("\n  *Catatan: %s*", fee.Notes)
	}
	return line
}

func (g *Generator) defaultFeeLine() string {
	fee, ok := g.kb.PracticumFees[knowledge.DefaultFeeKey]
	if !ok {
		return "  Informasi komponen biaya praktikum umum belum tersedia."
	}
	line := fmt.Sprintf("  Biaya praktikum umumnya sekitar %s.", feeComponents(fee))
	if fee.Notes != "" {
		line += fmt.Sprintf("\n  *Catatan umum: %s*", fee.Notes)
	}
	return line
}

func feeComponents(fee knowledge.PracticumFee) string {
	parts := []string{fmt.Sprintf("biaya partisipasi sekitar **%s**", knowledge.FormatIDR(fee.Amount))}
	if fee.ExamAmount != 0 {
		parts = append(parts, fmt.Sprintf("biaya ujian akhir sekitar **%s**", knowledge.FormatIDR(fee.ExamAmount)))
	}
	return strings.Join(parts, ", ditambah ")
}

func (g *Generator) prodiInfo(in Input) Reply {
	awal := sapaanAwal(in.UserName)
	tengah := sapaanTengah(in.UserName)

	target := in.Prodi
	if target == "" {
		switch in.Intent {
		case "info_prodi_informatika":
			target = "Teknik Informatika"
		case "info_prodi_sipil":
			target = "Teknik Sipil"
		case "info_prodi_pertambangan":
			target = "Teknik Pertambangan"
		}
	}

	if target == "" {
		options := make([]string, 0, len(g.kb.Learning))
		for _, p := range g.kb.Learning {
			options = append(options, p.Prodi)
		}
		if len(options) == 0 {
			return Reply{
				Text:     fmt.Sprintf("%sMaaf, daftar program studi di Fakultas Teknik belum tersedia di data saya.", tengah),
				Category: "fallback_prodi_list_missing",
			}
		}
		text := fmt.Sprintf("%s. Fakultas Teknik UNANDA saat ini memiliki program studi: **%s**. "+
			"Prodi mana yang spesifik ingin Anda ketahui informasinya? (Contoh: 'info prodi sipil')",
			awal, strings.Join(options, ", "))
		return Reply{Text: text, Category: "prompt_for_prodi_general"}
	}

	learning, ok := g.kb.LearningForProdi(target)
	if !ok {
		return Reply{
			Text: fmt.Sprintf("%sMaaf, informasi umum untuk Prodi %s belum tersedia lengkap di data saya. "+
				"Anda bisa coba cek langsung di website Fakultas Teknik UNANDA atau bertanya tentang topik lain.", tengah, target),
			Category: "fallback_prodi_info_missing",
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s. Berikut informasi umum mengenai **Prodi %s**:", awal, target)
	if learning.Summary != "" {
		fmt.Fprintf(&b, "\n\n- **Fokus Utama**: %s", learning.Summary)
	}
	if link := g.kb.ProdiLinks[target]; link != "" {
		fmt.Fprintf(&b, "\n- **Website/Info Lengkap**: %s", link)
	}
	if _, ok := g.kb.SPPForProdi(target); ok {
		fmt.Fprintf(&b, "\n\nUntuk biaya kuliah, Anda bisa tanya 'berapa spp %s?'.", target)
	}
	if len(learning.Labs) > 0 {
		fmt.Fprintf(&b, "\n\nAnda juga bisa tanya informasi mengenai lab spesifik di prodi ini (misal: 'info lab %s') atau materi pembelajarannya ('apa yang dipelajari di %s?').",
			learning.Labs[0].Lab, learning.Labs[0].Lab)
	}

	short := strings.ToLower(strings.TrimPrefix(target, "Teknik "))
	return Reply{Text: b.String(), Category: fmt.Sprintf("info_prodi_%s_handled", short)}
}

func (g *Generator) practicumFee(in Input) Reply {
	awal := sapaanAwal(in.UserName)
	tengah := sapaanTengah(in.UserName)

	if in.Lab == "" {
		labs := g.kb.LabsWithFeeInfo()
		if len(labs) == 0 {
			return Reply{
				Text:     fmt.Sprintf("%sMaaf, saya belum punya daftar laboratorium dengan informasi biaya praktikum. Silakan hubungi bagian akademik/lab terkait.", tengah),
				Category: "fallback_lab_terms_missing_for_fee",
			}
		}
		display := labs
		if len(display) > 3 {
			display = display[:3]
		}
		suffix := "."
		if len(labs) > len(display) {
			suffix = "..."
		}
		text := fmt.Sprintf("%s, untuk memberikan informasi biaya praktikum yang lebih akurat, "+
			"mohon sebutkan nama laboratorium spesifiknya.\n"+
			"Beberapa lab yang ada info biayanya (atau info umum): **%s**%s"+
			"\nContoh pertanyaan: 'biaya praktikum %s'",
			awal, strings.Join(display, ", "), suffix, display[g.pick(len(display))])
		return Reply{Text: text, Category: "prompt_for_lab_fee"}
	}

	fee, specific, ok := g.kb.PracticumFeeFor(in.Lab)
	if !ok {
		return Reply{
			Text:     fmt.Sprintf("Maaf %s, informasi biaya praktikum tidak dapat dimuat saat ini. Silakan hubungi laboratorium terkait atau bagian akademik.", strings.TrimSuffix(tengah, ", ")),
			Category: "fallback_fee_data_missing",
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s, terkait biaya praktikum di Fakultas Teknik:", awal)
	if specific {
		fmt.Fprintf(&b, "\n\nUntuk praktikum **%s**:", in.Lab)
	} else {
		fmt.Fprintf(&b, "\n\nUntuk praktikum **%s** (menggunakan info biaya umum):", in.Lab)
	}
	parts := []string{fmt.Sprintf("Biaya partisipasi/modul utama: **%s**", knowledge.FormatIDR(fee.Amount))}
	if fee.ExamAmount != 0 {
		parts = append(parts, fmt.Sprintf("biaya ujian akhir praktikum (jika ada): **%s**", knowledge.FormatIDR(fee.ExamAmount)))
	}
	fmt.Fprintf(&b, "\n- %s.", strings.Join(parts, ", ditambah "))
	notes := fee.Notes
	if notes == "" {
		notes = "Biaya dapat berubah, mohon konfirmasi ke lab/akademik."
	}
	fmt.Fprintf(&b, "\n- *Catatan: %s*", notes)
	return Reply{Text: b.String(), Category: "tanya_biaya_praktikum_handled"}
}

func (g *Generator) contact(in Input) Reply {
	if strings.TrimSpace(g.kb.TUContact) == "" {
		return Reply{
			Text: fmt.Sprintf("%sInformasi kontak Tata Usaha (TU) belum lengkap di data saya. "+
				"Anda bisa coba cek langsung di website resmi Fakultas Teknik UNANDA untuk informasi kontak terbaru.",
				sapaanTengah(in.UserName)),
			Category: "fallback_kontak_placeholder",
		}
	}
	return Reply{
		Text:     fmt.Sprintf("%s. %s", sapaanAwal(in.UserName), g.kb.TUContact),
		Category: "kontak_ft_handled",
	}
}

func (g *Generator) pmbOverview(in Input) Reply {
	pmb := g.kb.PMB
	var b strings.Builder
	fmt.Fprintf(&b, "%s. Informasi lengkap mengenai Penerimaan Mahasiswa Baru (PMB) UNANDA, termasuk untuk Fakultas Teknik, ", sapaanAwal(in.UserName))
	if strings.Contains(pmb.Website, "http") {
		fmt.Fprintf(&b, "biasanya dapat diakses melalui website resmi PMB di: **%s**\n\n", pmb.Website)
	} else {
		b.WriteString("biasanya dapat diakses melalui website resmi PMB UNANDA.\n\n")
	}
	b.WriteString("Di sana Anda bisa menemukan informasi tentang:\n" +
		"- Jadwal pendaftaran\n- Jalur seleksi yang tersedia\n- Persyaratan pendaftaran\n" +
		"- Rincian biaya awal\n- Alur dan prosedur pendaftaran online\n\n")
	if strings.TrimSpace(pmb.Contact) != "" {
		fmt.Fprintf(&b, "Jika ada pertanyaan lebih lanjut mengenai PMB, Anda juga bisa menghubungi kontak panitia PMB: **%s**.\n\n", pmb.Contact)
	}
	b.WriteString("Apakah ada informasi spesifik terkait PMB yang ingin Anda tanyakan kepada saya? (misalnya tentang jalur, biaya awal, atau cara daftar)")
	return Reply{Text: b.String(), Category: "info_pmb_umum_handled"}
}

func (g *Generator) pmbTracks(in Input) Reply {
	pmb := g.kb.PMB
	if len(pmb.Tracks) == 0 {
		return Reply{
			Text:     fmt.Sprintf("Maaf %s, informasi detail mengenai jalur pendaftaran PMB tidak dapat dimuat. Silakan cek website PMB resmi.", strings.TrimSuffix(sapaanTengah(in.UserName), ", ")),
			Category: "fallback_pmb_jalur_missing",
		}
	}
	parts := []string{fmt.Sprintf("%s, berikut adalah jalur pendaftaran yang umumnya tersedia (berdasarkan data terakhir):", sapaanAwal(in.UserName))}
	for _, track := range pmb.Tracks {
		parts = append(parts, fmt.Sprintf("\n- **%s**: %s", track.Name, track.Description))
	}
	parts = append(parts, "\n\n**Penting:** Persyaratan detail, kuota, dan jadwal spesifik untuk setiap jalur dapat berubah setiap tahun.")
	if strings.Contains(pmb.Website, "http") {
		parts = append(parts, fmt.Sprintf("Pastikan Anda selalu memeriksa informasi terbaru dan paling akurat di website PMB resmi: **%s**", pmb.Website))
	} else {
		parts = append(parts, "Pastikan Anda selalu memeriksa informasi terbaru dan paling akurat di website PMB UNANDA.")
	}
	return Reply{Text: strings.Join(parts, "\n"), Category: "info_jalur_pmb_handled"}
}

func (g *Generator) pmbFees(in Input) Reply {
	pmb := g.kb.PMB
	if len(pmb.Fees) == 0 {
		return Reply{
			Text:     fmt.Sprintf("Maaf %s, informasi rincian biaya awal PMB tidak dapat dimuat. Silakan cek website PMB resmi.", strings.TrimSuffix(sapaanTengah(in.UserName), ", ")),
			Category: "fallback_pmb_fee_missing",
		}
	}
	parts := []string{fmt.Sprintf("%s, berikut adalah perkiraan komponen biaya awal yang terkait dengan Pendaftaran Mahasiswa Baru (berdasarkan data terakhir):", sapaanAwal(in.UserName))}
	for _, fee := range pmb.Fees {
		parts = append(parts, fmt.Sprintf("\n- **%s**: **%s**", fee.Name, knowledge.FormatIDR(fee.Amount)))
		if strings.TrimSpace(fee.Notes) != "" {
			parts = append(parts, fmt.Sprintf("  *(%s)*", fee.Notes))
		}
	}
	parts = append(parts,
		"\n\n**Penting:**",
		"- Ini adalah **biaya awal** yang terkait pendaftaran dan mungkin kegiatan orientasi/pembekalan.",
		"- Biaya ini **umumnya belum termasuk** biaya SPP/UKT untuk semester pertama dan biaya variabel lainnya (seperti praktikum jika ada di semester 1).",
		"- Jumlah dan komponen biaya dapat berubah. Selalu konfirmasi rincian biaya terbaru.")
	if strings.Contains(pmb.Website, "http") {
		parts = append(parts, fmt.Sprintf("Cek rincian biaya resmi dan terbaru di website PMB: **%s**", pmb.Website))
	} else {
		parts = append(parts, "Cek rincian biaya resmi dan terbaru di website PMB UNANDA.")
	}
	return Reply{Text: strings.Join(parts, "\n"), Category: "info_biaya_pmb_handled"}
}

func (g *Generator) pmbSteps(in Input) Reply {
	pmb := g.kb.PMB
	if len(pmb.GeneralSteps) == 0 {
		return Reply{
			Text:     fmt.Sprintf("Maaf %s, panduan umum langkah pendaftaran PMB tidak dapat dimuat. Silakan cek alur pendaftaran di website PMB resmi.", strings.TrimSuffix(sapaanTengah(in.UserName), ", ")),
			Category: "fallback_pmb_steps_missing",
		}
	}
	parts := []string{fmt.Sprintf("%s! Berikut adalah gambaran umum langkah-langkah mendaftar sebagai mahasiswa baru secara online (berdasarkan prosedur umum):", sapaanAwal(in.UserName))}
	for i, step := range pmb.GeneralSteps {
		parts = append(parts, fmt.Sprintf("%d. %s", i+1, step))
	}
	parts = append(parts,
		"\n\n**Mohon Diperhatikan:**",
		"- Ini adalah alur umum, langkah spesifik mungkin sedikit berbeda tergantung jalur pendaftaran dan sistem yang digunakan.",
		"- Pastikan Anda membaca **semua petunjuk** dengan teliti di portal pendaftaran.",
		"- Siapkan **semua dokumen** yang diperlukan dalam format digital (scan/foto) sesuai persyaratan.",
		"- Perhatikan **jadwal dan batas waktu** setiap tahapan.")
	if strings.Contains(pmb.Website, "http") {
		parts = append(parts, fmt.Sprintf("\nUntuk panduan paling akurat dan memulai pendaftaran, kunjungi website PMB resmi: **%s**", pmb.Website))
	} else {
		parts = append(parts, "\nUntuk panduan paling akurat dan memulai pendaftaran, kunjungi website PMB resmi UNANDA.")
	}
	return Reply{Text: strings.Join(parts, "\n"), Category: "cara_daftar_pmb_handled"}
}

func (g *Generator) prodiLearning(in Input) Reply {
	awal := sapaanAwal(in.UserName)
	tengah := sapaanTengah(in.UserName)

	if in.Prodi == "" {
		options := g.kb.ProdiWithLearningSummary()
		if len(options) == 0 {
			return Reply{
				Text:     fmt.Sprintf("%sMaaf, informasi pembelajaran untuk program studi belum tersedia di data saya.", tengah),
				Category: "fallback_learning_prodi_list_missing",
			}
		}
		text := fmt.Sprintf("%s, Anda ingin mengetahui gambaran pembelajaran di program studi mana? "+
			"Pilihan yang ada di data saya: **%s**.", awal, strings.Join(options, ", "))
		return Reply{Text: text, Category: "prompt_for_prodi_learning"}
	}

	learning, ok := g.kb.LearningForProdi(in.Prodi)
	if !ok || strings.TrimSpace(learning.Summary) == "" {
		return Reply{
			Text: fmt.Sprintf("Maaf %s, ringkasan materi pembelajaran untuk **Prodi %s** belum tersedia secara spesifik di data saya. "+
				"Secara umum, prodi ini akan membahas topik-topik yang relevan dengan bidangnya. "+
				"Anda bisa mencari silabus atau kurikulum di website resmi Prodi %s untuk detail mata kuliah.",
				strings.TrimSuffix(tengah, ", "), in.Prodi, in.Prodi),
			Category: "fallback_learning_prodi_summary_missing",
		}
	}

	text := fmt.Sprintf("%s. Secara garis besar, di **Prodi %s**, mahasiswa akan mempelajari berbagai hal terkait bidangnya. "+
		"Berikut adalah ringkasan fokus pembelajarannya:\n\n%s\n\n"+
		"Tentu saja ini gambaran umum. Mata kuliah spesifik akan dipelajari per semester sesuai kurikulum. "+
		"Anda bisa cek detail kurikulum di website prodi %s jika tersedia.",
		awal, in.Prodi, learning.Summary, in.Prodi)
	return Reply{Text: text, Category: "tanya_pembelajaran_prodi_handled"}
}

func (g *Generator) labLearning(in Input) Reply {
	awal := sapaanAwal(in.UserName)
	tengah := sapaanTengah(in.UserName)

	if in.Lab == "" {
		labs := g.kb.LabsWithLearningDesc()
		if len(labs) == 0 {
			return Reply{
				Text: fmt.Sprintf("%s. Anda ingin tahu materi pembelajaran di laboratorium mana? "+
					"Mohon sebutkan nama laboratorium spesifiknya. (Maaf, daftar lab dengan deskripsi belum tersedia di data saya untuk diberikan contoh).", awal),
				Category: "prompt_for_lab_learning_no_examples",
			}
		}
		display := labs
		if len(display) > 3 {
			display = display[:3]
		}
		text := fmt.Sprintf("%s, Anda ingin tahu materi pembelajaran di laboratorium mana? "+
			"Mohon sebutkan nama laboratorium spesifiknya. "+
			"Contohnya: 'apa yang dipelajari di %s?'",
			awal, display[g.pick(len(display))])
		return Reply{Text: text, Category: "prompt_for_lab_learning"}
	}

	owners, description, descProdi := g.kb.LabOwners(in.Lab, in.Prodi)
	if description == "" {
		return Reply{
			Text: fmt.Sprintf("Maaf %s, deskripsi detail mengenai apa yang dipelajari di laboratorium "+
				"**%s** belum tersedia di data saya. "+
				"Biasanya lab ini mendukung mata kuliah praktikum terkait.",
				strings.TrimSuffix(tengah, ", "), in.Lab),
			Category: "fallback_learning_lab_desc_missing",
		}
	}

	if len(owners) > 1 && in.Prodi == "" {
		text := fmt.Sprintf("%s. Laboratorium **%s** relevan untuk beberapa prodi "+
			"(misalnya %s).\n\n"+
			"Secara umum, di lab ini fokus pembelajarannya adalah:\n%s\n\n"+
			"Materi spesifik mungkin disesuaikan tergantung kebutuhan prodi.",
			awal, in.Lab, strings.Join(owners, ", "), description)
		return Reply{Text: text, Category: "tanya_pembelajaran_lab_multi_prodi"}
	}

	context := ""
	if descProdi != "" {
		context = fmt.Sprintf(" (Prodi %s)", descProdi)
	}
	text := fmt.Sprintf("%s. Di laboratorium **%s**%s, "+
		"fokus materi pembelajaran dan praktikumnya meliputi:\n\n%s",
		awal, in.Lab, context, description)
	return Reply{Text: text, Category: "tanya_pembelajaran_lab_handled"}
}

func (g *Generator) unhandled(in Input) Reply {
	intentLabel := "Tidak Dikenali"
	if in.Intent != "" {
		intentLabel = strings.ReplaceAll(in.Intent, "_", " ")
	}
	text := fmt.Sprintf("Saya mendeteksi niat '%s' (%.1f%%) dari pertanyaan Anda, "+
		"tapi saya belum diprogram untuk menjawab topik tersebut. "+
		"Mohon ajukan pertanyaan lain yang terkait Fakultas Teknik UNANDA.",
		intentLabel, in.Score*100)
	return Reply{Text: text, Category: "unhandled_valid_intent"}
}

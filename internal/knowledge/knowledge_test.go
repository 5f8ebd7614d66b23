package knowledge

import (
	"strings"
	"testing"
)

func TestFormatIDR(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{0, "Rp 0"},
		{500, "Rp 500"},
		{1500, "Rp 1.500"},
		{150000, "Rp 150.000"},
		{1500000, "Rp 1.500.000"},
		{12345678, "Rp 12.345.678"},
	}
	for _, tt := range tests {
		if got := FormatIDR(tt.amount); got != tt.want {
			t.Errorf("FormatIDR(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestDefault_TablesPopulated(t *testing.T) {
	base := Default()

	if len(base.IntentDescriptions) == 0 {
		t.Error("IntentDescriptions is empty")
	}
	if len(base.ProdiTerms) != 3 {
		t.Errorf("ProdiTerms has %d entries, want 3", len(base.ProdiTerms))
	}
	if len(base.SPP) != 3 {
		t.Errorf("SPP has %d entries, want 3", len(base.SPP))
	}
	if _, ok := base.PracticumFees[DefaultFeeKey]; !ok {
		t.Error("PracticumFees is missing the default entry")
	}
	if len(base.PMB.GeneralSteps) == 0 {
		t.Error("PMB.GeneralSteps is empty")
	}
}

func TestSPPForProdi(t *testing.T) {
	base := Default()

	fee, ok := base.SPPForProdi("Teknik Informatika")
	if !ok {
		t.Fatal("SPPForProdi(Teknik Informatika) not found")
	}
	if _, ok := fee.Periods[CurrentSPPPeriod]; !ok {
		t.Errorf("no amount for current period %s", CurrentSPPPeriod)
	}

	if _, ok := base.SPPForProdi("Teknik Mesin"); ok {
		t.Error("SPPForProdi(Teknik Mesin) = found, want not found")
	}
}

func TestSPPProdiOptions_Order(t *testing.T) {
	base := Default()

	got := base.SPPProdiOptions()
	want := []string{"Teknik Informatika", "Teknik Sipil", "Teknik Pertambangan"}
	if len(got) != len(want) {
		t.Fatalf("options = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("options[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPracticumFeeFor(t *testing.T) {
	base := Default()

	fee, specific, ok := base.PracticumFeeFor("Laboratorium Komputer")
	if !ok || !specific {
		t.Fatalf("PracticumFeeFor(Laboratorium Komputer) specific=%v ok=%v, want true true", specific, ok)
	}
	if fee.Amount <= 0 {
		t.Errorf("Amount = %d, want > 0", fee.Amount)
	}

	// Hidrolika has no specific record and falls back to default.
	fee, specific, ok = base.PracticumFeeFor("Laboratorium Hidrolika")
	if !ok || specific {
		t.Fatalf("PracticumFeeFor(Laboratorium Hidrolika) specific=%v ok=%v, want false true", specific, ok)
	}
	if fee != base.PracticumFees[DefaultFeeKey] {
		t.Error("fallback fee does not match the default entry")
	}
}

func TestLabOwners_MultiProdi(t *testing.T) {
	base := Default()

	owners, desc, descProdi := base.LabOwners("Laboratorium Komputer", "")
	if len(owners) != 2 {
		t.Fatalf("owners = %v, want 2 entries", owners)
	}
	if descProdi != "Teknik Informatika" {
		t.Errorf("descProdi = %q, want first owner Teknik Informatika", descProdi)
	}
	if !strings.Contains(desc, "pemrograman") {
		t.Errorf("description %q does not look like the Informatika entry", desc)
	}

	// Preferring the second owner switches the description.
	_, desc, descProdi = base.LabOwners("Laboratorium Komputer", "Teknik Pertambangan")
	if descProdi != "Teknik Pertambangan" {
		t.Errorf("descProdi = %q, want Teknik Pertambangan", descProdi)
	}
	if !strings.Contains(desc, "tambang") {
		t.Errorf("description %q does not look like the Pertambangan entry", desc)
	}
}

func TestLabsWithLearningDesc_Dedup(t *testing.T) {
	base := Default()

	labs := base.LabsWithLearningDesc()
	seen := make(map[string]int)
	for _, lab := range labs {
		seen[lab]++
	}
	if seen["Laboratorium Komputer"] != 1 {
		t.Errorf("Laboratorium Komputer listed %d times, want 1", seen["Laboratorium Komputer"])
	}
}

func TestTermTables_LowercaseVariants(t *testing.T) {
	base := Default()

	for canonical, variants := range base.ProdiTerms {
		if len(variants) == 0 {
			t.Errorf("ProdiTerms[%q] has no variants", canonical)
		}
		for _, v := range variants {
			if v != strings.ToLower(v) {
				t.Errorf("ProdiTerms[%q] variant %q is not lowercase", canonical, v)
			}
		}
	}
	for canonical, variants := range base.LabTerms {
		for _, v := range variants {
			if v != strings.ToLower(v) {
				t.Errorf("LabTerms[%q] variant %q is not lowercase", canonical, v)
			}
		}
	}
}

package locations

import "testing"

func TestIsValidDistrict(t *testing.T) {
	for _, district := range []string{"Chennai", "Coimbatore", "Madurai"} {
		if !IsValidDistrict(district) {
			t.Fatalf("expected %q to be valid", district)
		}
	}
	if IsValidDistrict("Salem") {
		t.Fatal("expected unsupported district to be invalid")
	}
	if IsValidDistrict("chennai") {
		t.Fatal("district matching is case sensitive")
	}
}

func TestDistrictsHaveTaluksAndVillages(t *testing.T) {
	for name, district := range Districts {
		if len(district.Taluks) == 0 {
			t.Fatalf("district %q has no taluks", name)
		}
		for taluk, villages := range district.Taluks {
			if len(villages) == 0 {
				t.Fatalf("taluk %q in %q has no villages", taluk, name)
			}
		}
	}
}

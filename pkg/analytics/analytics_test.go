package analytics

import "testing"

func TestIsStopword(t *testing.T) {
	for _, word := range []string{"の", "する", "、"} {
		if !IsStopword(word) {
			t.Errorf("IsStopword(%q) = false, want true", word)
		}
	}
	for _, word := range []string{"猫", "経済", "研究"} {
		if IsStopword(word) {
			t.Errorf("IsStopword(%q) = true, want false", word)
		}
	}
}

func TestStopwords(t *testing.T) {
	words := Stopwords()
	if len(words) == 0 {
		t.Fatal("Stopwords() is empty")
	}
	for _, word := range words {
		if !IsStopword(word) {
			t.Errorf("Stopwords() contains %q, but IsStopword rejects it", word)
		}
	}
}

func TestFilterCounts(t *testing.T) {
	counts := map[string]int{"の": 100, "猫": 5, "経済": 3}

	got := FilterCounts(counts, nil)
	if _, ok := got["の"]; ok {
		t.Error("FilterCounts() kept default stopword の")
	}
	if got["猫"] != 5 || got["経済"] != 3 {
		t.Errorf("FilterCounts() = %v, want content words kept", got)
	}

	got = FilterCounts(counts, []string{"猫"})
	if _, ok := got["猫"]; ok {
		t.Error("FilterCounts() kept extra stopword 猫")
	}

	// Input map is untouched.
	if counts["の"] != 100 {
		t.Error("FilterCounts() modified its input")
	}
}

package mapreduce

import (
	"bytes"
	"reflect"
	"testing"
)

func TestMap(t *testing.T) {
	got := Map([]string{"猫", "走る", "猫"})
	want := map[string]int{"猫": 2, "走る": 1}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Map() = %v, want %v", got, want)
	}

	if got := Map(nil); len(got) != 0 {
		t.Errorf("Map(nil) = %v, want empty", got)
	}
}

func TestReduce(t *testing.T) {
	got := Reduce([]map[string]int{
		{"猫": 2, "犬": 1},
		{"猫": 1, "鳥": 3},
	})
	want := map[string]int{"猫": 3, "犬": 1, "鳥": 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reduce() = %v, want %v", got, want)
	}
}

func TestTopN(t *testing.T) {
	counts := map[string]int{"犬": 2, "猫": 5, "鳥": 2, "魚": 1}

	got := TopN(counts, 3)
	// Ties broken alphabetically: 犬 (U+72AC) sorts before 鳥 (U+9CE5).
	want := []WordCount{{"猫", 5}, {"犬", 2}, {"鳥", 2}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopN() = %v, want %v", got, want)
	}

	if got := TopN(counts, 100); len(got) != 4 {
		t.Errorf("TopN(100) = %d entries, want all 4", len(got))
	}
	if got := TopN(counts, -1); len(got) != 0 {
		t.Errorf("TopN(-1) = %v, want empty", got)
	}
}

func TestPrintTopN(t *testing.T) {
	var buf bytes.Buffer
	PrintTopN(&buf, map[string]int{"猫": 2, "犬": 1}, 2)

	want := "1. 猫: 2\n2. 犬: 1\n"
	if buf.String() != want {
		t.Errorf("PrintTopN() = %q, want %q", buf.String(), want)
	}
}

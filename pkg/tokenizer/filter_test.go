package tokenizer

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ugohsu/colab-nlp-templates/models"
)

func sampleTokens() []models.Token {
	return []models.Token{
		{Word: "猫", POS: "名詞"},
		{Word: "が", POS: "助詞"},
		{Word: "走る", POS: "動詞"},
		{Word: "犬", POS: "名詞"},
	}
}

func words(tokens []models.Token) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = t.Word
	}
	return out
}

func TestFilterTokens_KeepOnly(t *testing.T) {
	got, err := FilterTokens(sampleTokens(), Filter{POSKeep: []string{"名詞"}})
	if err != nil {
		t.Fatalf("FilterTokens() error = %v", err)
	}
	if want := []string{"猫", "犬"}; !reflect.DeepEqual(words(got), want) {
		t.Errorf("FilterTokens() = %v, want %v", words(got), want)
	}
}

func TestFilterTokens_ExcludeOnly(t *testing.T) {
	got, err := FilterTokens(sampleTokens(), Filter{POSExclude: []string{"助詞"}})
	if err != nil {
		t.Fatalf("FilterTokens() error = %v", err)
	}
	if want := []string{"猫", "走る", "犬"}; !reflect.DeepEqual(words(got), want) {
		t.Errorf("FilterTokens() = %v, want %v", words(got), want)
	}
}

func TestFilterTokens_DisjointStrictFails(t *testing.T) {
	_, err := FilterTokens(sampleTokens(), Filter{
		POSKeep:    []string{"名詞"},
		POSExclude: []string{"助詞"},
		Strict:     true,
	})
	if !errors.Is(err, ErrDisjointFilter) {
		t.Fatalf("FilterTokens() error = %v, want ErrDisjointFilter", err)
	}
}

func TestFilterTokens_DisjointNonStrictKeepsOnlyKeepList(t *testing.T) {
	// Without strict, the disjoint exclude list has no observable effect.
	got, err := FilterTokens(sampleTokens(), Filter{
		POSKeep:    []string{"名詞"},
		POSExclude: []string{"助詞"},
	})
	if err != nil {
		t.Fatalf("FilterTokens() error = %v", err)
	}
	if want := []string{"猫", "犬"}; !reflect.DeepEqual(words(got), want) {
		t.Errorf("FilterTokens() = %v, want %v", words(got), want)
	}
}

func TestFilterTokens_OverlappingStrictIsAllowed(t *testing.T) {
	_, err := FilterTokens(sampleTokens(), Filter{
		POSKeep:    []string{"名詞", "助詞"},
		POSExclude: []string{"助詞"},
		Strict:     true,
	})
	if err != nil {
		t.Fatalf("FilterTokens() with overlap error = %v", err)
	}
}

func TestFilterTokens_Stopwords(t *testing.T) {
	got, err := FilterTokens(sampleTokens(), Filter{Stopwords: []string{"猫"}})
	if err != nil {
		t.Fatalf("FilterTokens() error = %v", err)
	}
	if want := []string{"が", "走る", "犬"}; !reflect.DeepEqual(words(got), want) {
		t.Errorf("FilterTokens() = %v, want %v", words(got), want)
	}
}

func TestTokenizeWords_ValidatesUpFront(t *testing.T) {
	_, err := TokenizeWords(nil, Filter{
		POSKeep:    []string{"名詞"},
		POSExclude: []string{"助詞"},
		Strict:     true,
	})
	if !errors.Is(err, ErrDisjointFilter) {
		t.Fatalf("TokenizeWords() error = %v, want ErrDisjointFilter", err)
	}
}

func TestJoin(t *testing.T) {
	if got := Join([]string{"猫", "走る"}, ""); got != "猫 走る" {
		t.Errorf("Join() = %q", got)
	}
	if got := Join(nil, " "); got != "" {
		t.Errorf("Join(nil) = %q, want empty", got)
	}
}

func TestJoinAll(t *testing.T) {
	docs := [][]string{{"猫", "走る"}, {}, {"犬"}}
	if got := JoinAll(docs, " "); got != "猫 走る 犬" {
		t.Errorf("JoinAll() = %q", got)
	}
}

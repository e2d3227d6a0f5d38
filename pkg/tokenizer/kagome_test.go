package tokenizer

import (
	"testing"
)

// The IPA dictionary is embedded in the kagome-dict module, so these tests
// exercise the real analyzer. Construction is slow; share one instance.
var ipaTok *Kagome

func getIPA(t *testing.T) *Kagome {
	t.Helper()
	if ipaTok == nil {
		tok, err := NewIPA(Options{BaseForm: true})
		if err != nil {
			t.Fatalf("NewIPA() error = %v", err)
		}
		ipaTok = tok
	}
	return ipaTok
}

func TestKagome_TokenizeOne(t *testing.T) {
	tok := getIPA(t)

	tokens, err := tok.TokenizeOne("猫が走る")
	if err != nil {
		t.Fatalf("TokenizeOne() error = %v", err)
	}
	if len(tokens) == 0 {
		t.Fatal("TokenizeOne() returned no tokens")
	}

	var sawNoun bool
	for _, token := range tokens {
		if token.Word == "" {
			t.Errorf("token with empty word: %+v", token)
		}
		if token.POS == "名詞" {
			sawNoun = true
		}
	}
	if !sawNoun {
		t.Errorf("no noun in %v", tokens)
	}
}

func TestKagome_EmptyInput(t *testing.T) {
	tok := getIPA(t)

	for _, input := range []string{"", "   ", "\n\t"} {
		tokens, err := tok.TokenizeOne(input)
		if err != nil {
			t.Fatalf("TokenizeOne(%q) error = %v", input, err)
		}
		if tokens == nil || len(tokens) != 0 {
			t.Errorf("TokenizeOne(%q) = %v, want empty non-nil slice", input, tokens)
		}
	}
}

func TestKagome_BaseForm(t *testing.T) {
	tok := getIPA(t)

	tokens, err := tok.TokenizeOne("走った")
	if err != nil {
		t.Fatalf("TokenizeOne() error = %v", err)
	}

	var sawBase bool
	for _, token := range tokens {
		if token.Word == "走る" {
			sawBase = true
		}
	}
	if !sawBase {
		t.Errorf("base form 走る not found in %v", words(tokens))
	}
}

func TestKagome_SurfaceForm(t *testing.T) {
	tok, err := NewIPA(Options{BaseForm: false})
	if err != nil {
		t.Fatalf("NewIPA() error = %v", err)
	}

	tokens, err := tok.TokenizeOne("走った")
	if err != nil {
		t.Fatalf("TokenizeOne() error = %v", err)
	}

	var sawInflected bool
	for _, token := range tokens {
		if token.Word == "走っ" {
			sawInflected = true
		}
	}
	if !sawInflected {
		t.Errorf("surface 走っ not found in %v", words(tokens))
	}
}

func TestKagome_Detail(t *testing.T) {
	tok, err := NewIPA(Options{BaseForm: true, Detail: true})
	if err != nil {
		t.Fatalf("NewIPA() error = %v", err)
	}

	tokens, err := tok.TokenizeOne("猫")
	if err != nil {
		t.Fatalf("TokenizeOne() error = %v", err)
	}
	if len(tokens) == 0 {
		t.Fatal("TokenizeOne() returned no tokens")
	}
	if tokens[0].Detail == nil {
		t.Fatal("Detail is nil with Detail option set")
	}
	if tokens[0].Detail.Surface != "猫" {
		t.Errorf("Detail.Surface = %q, want 猫", tokens[0].Detail.Surface)
	}
}

func TestNew_EngineSelection(t *testing.T) {
	if _, err := New("", Options{}); err != nil {
		t.Errorf("New(\"\") error = %v", err)
	}
	if _, err := New("ipa", Options{}); err != nil {
		t.Errorf("New(\"ipa\") error = %v", err)
	}
	if _, err := New("janome", Options{}); err == nil {
		t.Error("New(\"janome\") succeeded, want error")
	}
}

func TestParseMode(t *testing.T) {
	if _, err := NewIPA(Options{Mode: "search"}); err != nil {
		t.Errorf("mode search error = %v", err)
	}
	if _, err := NewIPA(Options{Mode: "A"}); err == nil {
		t.Error("unknown mode succeeded, want error")
	}
}

package textio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a.txt")
	if err := os.WriteFile(path, []byte("猫が走る"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := ReadText(path)
	if err != nil {
		t.Fatalf("ReadText() error = %v", err)
	}
	if got != "猫が走る" {
		t.Errorf("ReadText() = %q", got)
	}
}

func TestReadText_InvalidUTF8IsReplaced(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.txt")
	// A Shift_JIS-encoded 猫 is not valid UTF-8.
	if err := os.WriteFile(path, []byte{0x94, 0x4C, 0x0A}, 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := ReadText(path)
	if err != nil {
		t.Fatalf("ReadText() error = %v, want decode fallback, not failure", err)
	}
	if !strings.Contains(got, "�") {
		t.Errorf("ReadText() = %q, want replacement character", got)
	}
}

func TestReadText_Missing(t *testing.T) {
	_, err := ReadText(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Error("ReadText() on missing file succeeded, want error")
	}
}

func TestIsHTMLPath(t *testing.T) {
	cases := map[string]bool{
		"doc.html":     true,
		"doc.HTM":      true,
		"doc.txt":      false,
		"html/doc.txt": false,
	}
	for path, want := range cases {
		if got := IsHTMLPath(path); got != want {
			t.Errorf("IsHTMLPath(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestExtractHTML(t *testing.T) {
	html := `<html><head><title>記事</title></head><body>
		<nav>メニュー ホーム お問い合わせ</nav>
		<article>
			<h1>見出し</h1>
			<p>これは本文の段落です。猫が走るという話を長々と続けます。</p>
			<p>二つ目の段落にも十分な本文があります。犬も走ります。</p>
		</article>
		<footer>著作権表示</footer>
	</body></html>`

	text, err := ExtractHTML(html)
	if err != nil {
		t.Fatalf("ExtractHTML() error = %v", err)
	}
	if !strings.Contains(text, "本文の段落") {
		t.Errorf("ExtractHTML() = %q, want article body text", text)
	}
}

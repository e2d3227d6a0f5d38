package db

import (
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := Open(filepath.Join(t.TempDir(), "test-stats.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return database
}

func TestReplaceDoc_Converges(t *testing.T) {
	database := setupTestDB(t)

	err := database.ReplaceDoc(1, "a.txt", 3, map[string]int{"猫": 2, "犬": 1})
	if err != nil {
		t.Fatalf("ReplaceDoc() error = %v", err)
	}

	// A second store for the same doc replaces, not accumulates.
	err = database.ReplaceDoc(1, "a.txt", 1, map[string]int{"鳥": 1})
	if err != nil {
		t.Fatalf("ReplaceDoc() second call error = %v", err)
	}

	words, err := database.TopWords(10)
	if err != nil {
		t.Fatalf("TopWords() error = %v", err)
	}
	if len(words) != 1 || words[0].Word != "鳥" || words[0].Count != 1 {
		t.Errorf("TopWords() = %v, want only 鳥:1", words)
	}

	total, err := database.TokenTotal()
	if err != nil {
		t.Fatalf("TokenTotal() error = %v", err)
	}
	if total != 1 {
		t.Errorf("TokenTotal() = %d, want 1", total)
	}
}

func TestTopWords_AggregatesAcrossDocs(t *testing.T) {
	database := setupTestDB(t)

	if err := database.ReplaceDoc(1, "a.txt", 3, map[string]int{"猫": 2, "犬": 1}); err != nil {
		t.Fatalf("ReplaceDoc() error = %v", err)
	}
	if err := database.ReplaceDoc(2, "b.txt", 4, map[string]int{"猫": 1, "鳥": 3}); err != nil {
		t.Fatalf("ReplaceDoc() error = %v", err)
	}

	words, err := database.TopWords(2)
	if err != nil {
		t.Fatalf("TopWords() error = %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("TopWords() = %d entries, want 2", len(words))
	}
	if words[0].Word != "猫" || words[0].Count != 3 {
		t.Errorf("top word = %+v, want 猫:3", words[0])
	}
	if words[1].Word != "鳥" || words[1].Count != 3 {
		t.Errorf("second word = %+v, want 鳥:3", words[1])
	}

	n, err := database.DocCount()
	if err != nil {
		t.Fatalf("DocCount() error = %v", err)
	}
	if n != 2 {
		t.Errorf("DocCount() = %d, want 2", n)
	}
}

func TestOpen_ReopensExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.db")

	first, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := first.ReplaceDoc(1, "a.txt", 1, map[string]int{"猫": 1}); err != nil {
		t.Fatalf("ReplaceDoc() error = %v", err)
	}
	if err := first.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	second, err := Open(path)
	if err != nil {
		t.Fatalf("Open() reopen error = %v", err)
	}
	defer second.Close()

	n, err := second.DocCount()
	if err != nil {
		t.Fatalf("DocCount() error = %v", err)
	}
	if n != 1 {
		t.Errorf("DocCount() after reopen = %d, want 1", n)
	}
}

package db

import (
	"fmt"

	"github.com/ugohsu/colab-nlp-templates/pkg/mapreduce"
)

// ReplaceDoc stores one document's token stats, replacing any prior counts
// for the same doc_id. Re-running stats after a retry therefore converges
// on the latest attempt rather than accumulating stale rows.
func (db *DB) ReplaceDoc(docID int, path string, nTokens int, counts map[string]int) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM words WHERE doc_id = ?", docID); err != nil {
		return fmt.Errorf("failed to clear word counts: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO docs (doc_id, path, n_tokens, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(doc_id) DO UPDATE SET
			path = excluded.path,
			n_tokens = excluded.n_tokens,
			updated_at = CURRENT_TIMESTAMP`,
		docID, path, nTokens)
	if err != nil {
		return fmt.Errorf("failed to upsert doc: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO words (doc_id, word, count) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for word, count := range counts {
		if _, err := stmt.Exec(docID, word, count); err != nil {
			return fmt.Errorf("failed to insert word count: %w", err)
		}
	}

	return tx.Commit()
}

// TopWords returns the n highest aggregate word counts across all docs.
func (db *DB) TopWords(n int) ([]mapreduce.WordCount, error) {
	rows, err := db.Query(`
		SELECT word, SUM(count) AS total
		FROM words
		GROUP BY word
		ORDER BY total DESC, word ASC
		LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query top words: %w", err)
	}
	defer rows.Close()

	var out []mapreduce.WordCount
	for rows.Next() {
		var wc mapreduce.WordCount
		if err := rows.Scan(&wc.Word, &wc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan word count: %w", err)
		}
		out = append(out, wc)
	}
	return out, rows.Err()
}

// DocCount returns the number of stored documents.
func (db *DB) DocCount() (int, error) {
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM docs").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count docs: %w", err)
	}
	return n, nil
}

// TokenTotal returns the total token count across all stored documents.
func (db *DB) TokenTotal() (int, error) {
	var n int
	if err := db.QueryRow("SELECT COALESCE(SUM(n_tokens), 0) FROM docs").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to sum tokens: %w", err)
	}
	return n, nil
}

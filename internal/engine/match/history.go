package match

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/anatolykoptev/go_resume/internal/engine"
)

// AnalysisRecord is one stored scoring run. Only scores and skill names are
// persisted — never resume or job description text.
type AnalysisRecord struct {
	ID                int64   `json:"id"`
	Label             string  `json:"label,omitempty"`
	Score             float64 `json:"score"`
	SkillsMatch       float64 `json:"skills_match"`
	KeywordMatch      float64 `json:"keyword_match"`
	ContentSimilarity float64 `json:"content_similarity"`
	ExperienceMatch   float64 `json:"experience_match"`
	EducationMatch    float64 `json:"education_match"`
	MatchedCount      int     `json:"matched_count"`
	MissingCount      int     `json:"missing_count"`
	MissingMustHave   string  `json:"missing_must_have,omitempty"`
	CreatedAt         string  `json:"created_at"`
}

// HistoryListInput is the input for analysis_history_list.
type HistoryListInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"Max entries to return (default 20, max 100)"`
}

// HistoryListResult is the output for analysis_history_list.
type HistoryListResult struct {
	Analyses []AnalysisRecord `json:"analyses"`
	Total    int              `json:"total"`
}

var (
	historyDB   *sql.DB
	historyOnce sync.Once
	historyErr  error
)

// openHistoryDB opens (or creates) the SQLite history database.
func openHistoryDB() (*sql.DB, error) {
	historyOnce.Do(func() {
		dbPath := engine.Cfg.HistoryPath
		if dbPath == "" {
			dbPath = filepath.Join(os.Getenv("HOME"), ".go_resume", "history.db")
		}
		if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
			historyErr = fmt.Errorf("history: mkdir %s: %w", filepath.Dir(dbPath), err)
			return
		}
		db, err := sql.Open("sqlite", dbPath)
		if err != nil {
			historyErr = fmt.Errorf("history: open db: %w", err)
			return
		}
		db.SetMaxOpenConns(1) // SQLite: single writer
		if err := initHistorySchema(db); err != nil {
			historyErr = fmt.Errorf("history: init schema: %w", err)
			return
		}
		historyDB = db
	})
	return historyDB, historyErr
}

// initHistorySchema creates the analyses table if it doesn't exist.
func initHistorySchema(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS analyses (
		id                 INTEGER PRIMARY KEY AUTOINCREMENT,
		label              TEXT,
		score              REAL NOT NULL,
		skills_match       REAL NOT NULL,
		keyword_match      REAL NOT NULL,
		content_similarity REAL NOT NULL,
		experience_match   REAL NOT NULL,
		education_match    REAL NOT NULL,
		matched_count      INTEGER NOT NULL,
		missing_count      INTEGER NOT NULL,
		missing_must_have  TEXT,
		created_at         TEXT NOT NULL
	)`)
	return err
}

// RecordAnalysis stores the scores of one analysis run and returns its id.
func RecordAnalysis(_ context.Context, label string, result *ScoreResult) (int64, error) {
	if result == nil {
		return 0, errors.New("history: nil result")
	}

	db, err := openHistoryDB()
	if err != nil {
		return 0, err
	}

	matchedCount := len(result.MatchedSkills.MustHave) +
		len(result.MatchedSkills.Preferred) +
		len(result.MatchedSkills.Standard)
	missingCount := len(result.MissingSkills.MustHave) + len(result.MissingSkills.Preferred)

	now := time.Now().UTC().Format(time.RFC3339)
	cs := result.ComponentScores
	res, err := db.Exec(
		`INSERT INTO analyses (label, score, skills_match, keyword_match, content_similarity,
		 experience_match, education_match, matched_count, missing_count, missing_must_have, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		label, result.Score, cs.SkillsMatch, cs.KeywordMatch, cs.ContentSimilarity,
		cs.ExperienceMatch, cs.EducationMatch, matchedCount, missingCount,
		strings.Join(result.MissingSkills.MustHave, ","), now,
	)
	if err != nil {
		return 0, fmt.Errorf("history: insert: %w", err)
	}

	engine.IncrHistoryWrites()
	id, _ := res.LastInsertId()
	return id, nil
}

// ListAnalyses returns stored analyses, newest first.
func ListAnalyses(_ context.Context, input HistoryListInput) (*HistoryListResult, error) {
	db, err := openHistoryDB()
	if err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	rows, err := db.Query(
		`SELECT id, label, score, skills_match, keyword_match, content_similarity,
		 experience_match, education_match, matched_count, missing_count, missing_must_have, created_at
		 FROM analyses ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("history: query: %w", err)
	}
	defer rows.Close()

	var analyses []AnalysisRecord
	for rows.Next() {
		var a AnalysisRecord
		var label, missingMust sql.NullString
		if err := rows.Scan(&a.ID, &label, &a.Score, &a.SkillsMatch, &a.KeywordMatch,
			&a.ContentSimilarity, &a.ExperienceMatch, &a.EducationMatch,
			&a.MatchedCount, &a.MissingCount, &missingMust, &a.CreatedAt); err != nil {
			continue
		}
		a.Label = label.String
		a.MissingMustHave = missingMust.String
		analyses = append(analyses, a)
	}

	var total int
	db.QueryRow(`SELECT COUNT(*) FROM analyses`).Scan(&total) //nolint:errcheck

	if analyses == nil {
		analyses = []AnalysisRecord{}
	}
	return &HistoryListResult{Analyses: analyses, Total: total}, nil
}

package analyses

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new analysis.
func (r *PGRepo) Create(ctx context.Context, analysis Analysis) error {
	const query = `
INSERT INTO analyses (
	id, user_id, resume_text, job_description, ats_score,
	missing_keywords, improvements, recommendations,
	tailored_resume, cover_letter, interview_qa, created_at
)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	missingKeywords, err := marshalJSONB(analysis.MissingKeywords)
	if err != nil {
		return err
	}
	improvements, err := marshalJSONB(analysis.Improvements)
	if err != nil {
		return err
	}
	recommendations, err := marshalJSONB(analysis.Recommendations)
	if err != nil {
		return err
	}
	var interviewQA any
	if analysis.InterviewQA != nil {
		interviewQA, err = marshalJSONB(analysis.InterviewQA)
		if err != nil {
			return err
		}
	}
	_, err = r.DB.ExecContext(ctx, query,
		analysis.ID,
		analysis.UserID,
		analysis.ResumeText,
		analysis.JobDescription,
		analysis.ATSScore,
		missingKeywords,
		improvements,
		recommendations,
		nullString(analysis.TailoredResume),
		nullString(analysis.CoverLetter),
		interviewQA,
		analysis.CreatedAt,
	)
	return err
}

// GetByID returns an analysis by ID.
func (r *PGRepo) GetByID(ctx context.Context, analysisID string) (Analysis, error) {
	const query = selectColumns + `
WHERE id = $1
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, analysisID)
	analysis, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	return analysis, nil
}

// ListByUser returns a user's analyses ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Analysis, error) {
	const query = selectColumns + `
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Analysis, 0, limit)
	for rows.Next() {
		analysis, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, analysis)
	}
	return out, rows.Err()
}

// LatestByUser returns the user's most recent analysis.
func (r *PGRepo) LatestByUser(ctx context.Context, userID string) (Analysis, error) {
	const query = selectColumns + `
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, userID)
	analysis, err := scanAnalysis(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Analysis{}, ErrNotFound
		}
		return Analysis{}, err
	}
	return analysis, nil
}

const selectColumns = `
SELECT id, user_id, resume_text, job_description, ats_score,
       missing_keywords, improvements, recommendations,
       tailored_resume, cover_letter, interview_qa, created_at
FROM analyses`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row rowScanner) (Analysis, error) {
	var a Analysis
	var missingKeywords, improvements, recommendations []byte
	var tailoredResume, coverLetter sql.NullString
	var interviewQA []byte
	if err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.ResumeText,
		&a.JobDescription,
		&a.ATSScore,
		&missingKeywords,
		&improvements,
		&recommendations,
		&tailoredResume,
		&coverLetter,
		&interviewQA,
		&a.CreatedAt,
	); err != nil {
		return Analysis{}, err
	}

	if err := unmarshalList(missingKeywords, &a.MissingKeywords); err != nil {
		return Analysis{}, err
	}
	if err := unmarshalList(improvements, &a.Improvements); err != nil {
		return Analysis{}, err
	}
	if err := unmarshalList(recommendations, &a.Recommendations); err != nil {
		return Analysis{}, err
	}
	if tailoredResume.Valid {
		a.TailoredResume = tailoredResume.String
	}
	if coverLetter.Valid {
		a.CoverLetter = coverLetter.String
	}
	if len(interviewQA) > 0 {
		if err := json.Unmarshal(interviewQA, &a.InterviewQA); err != nil {
			return Analysis{}, err
		}
	}
	return a, nil
}

func unmarshalList(raw []byte, dest *[]string) error {
	if len(raw) == 0 {
		*dest = []string{}
		return nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return err
	}
	if *dest == nil {
		*dest = []string{}
	}
	return nil
}

func marshalJSONB(list []string) ([]byte, error) {
	if list == nil {
		list = []string{}
	}
	return json.Marshal(list)
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

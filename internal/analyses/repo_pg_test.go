package analyses

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	analysis := Analysis{
		ID:              "analysis-1",
		UserID:          "user-1",
		ResumeText:      "resume text",
		JobDescription:  "jd",
		ATSScore:        75,
		MissingKeywords: []string{"Go"},
		Improvements:    []string{"improve"},
		Recommendations: []string{"recommend"},
		TailoredResume:  "tailored",
		CreatedAt:       time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO analyses").
		WithArgs(
			analysis.ID,
			analysis.UserID,
			analysis.ResumeText,
			analysis.JobDescription,
			analysis.ATSScore,
			sqlmock.AnyArg(), // missing_keywords
			sqlmock.AnyArg(), // improvements
			sqlmock.AnyArg(), // recommendations
			analysis.TailoredResume,
			nil, // cover_letter absent
			nil, // interview_qa absent
			analysis.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), analysis); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	createdAt := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "resume_text", "job_description", "ats_score",
		"missing_keywords", "improvements", "recommendations",
		"tailored_resume", "cover_letter", "interview_qa", "created_at",
	}).AddRow(
		"analysis-1", "user-1", "resume", "jd", 75,
		[]byte(`["Go","Kubernetes"]`), []byte(`["improve"]`), []byte(`["recommend"]`),
		nil, nil, nil, createdAt,
	)

	mock.ExpectQuery("SELECT id, user_id").
		WithArgs("analysis-1").
		WillReturnRows(rows)

	analysis, err := repo.GetByID(context.Background(), "analysis-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if analysis.ATSScore != 75 || len(analysis.MissingKeywords) != 2 {
		t.Errorf("analysis = %+v", analysis)
	}
	if analysis.TailoredResume != "" || analysis.InterviewQA != nil {
		t.Errorf("null columns must map to absent fields: %+v", analysis)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	mock.ExpectQuery("SELECT id, user_id").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	if _, err := repo.GetByID(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

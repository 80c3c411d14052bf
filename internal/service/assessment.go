package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/templui/lifecoach/internal/coaching"
	"github.com/templui/lifecoach/internal/markdown"
	"github.com/templui/lifecoach/internal/model"
	"github.com/templui/lifecoach/internal/repository"
	"github.com/templui/lifecoach/internal/storage"
)

var (
	ErrEmptyAssessment  = errors.New("assessment has no answers")
	ErrInvalidSessionID = errors.New("session id is required")
	ErrReportsDisabled  = errors.New("report archive is not configured")
)

// AssessmentReport is a scored assessment with its insights projection.
type AssessmentReport struct {
	Result   *model.AssessmentResult  `json:"result"`
	Insights model.AssessmentInsights `json:"insights"`
}

type AssessmentService struct {
	repo         repository.AssessmentRepository
	profileRepo  repository.ProfileRepository
	emailService *EmailService
	reports      storage.Storage
	markdown     *markdown.Parser
	appURL       string
	appName      string
}

// NewAssessmentService wires the assessment flow. reports may be nil, which disables the
// report archive.
func NewAssessmentService(
	repo repository.AssessmentRepository,
	profileRepo repository.ProfileRepository,
	emailService *EmailService,
	reports storage.Storage,
	appURL, appName string,
) *AssessmentService {
	return &AssessmentService{
		repo:         repo,
		profileRepo:  profileRepo,
		emailService: emailService,
		reports:      reports,
		markdown:     markdown.NewParser(),
		appURL:       appURL,
		appName:      appName,
	}
}

// SaveProgress merges answers into the session's saved answers and records the step the
// user is on. Anonymous sessions pass a nil user.
func (s *AssessmentService) SaveProgress(ctx context.Context, sessionID string, user *model.User, answers model.Answers, step int) (*model.AssessmentProgress, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}

	progress, err := s.repo.Progress(ctx, sessionID)
	if errors.Is(err, repository.ErrAssessmentProgressNotFound) {
		progress = &model.AssessmentProgress{SessionID: sessionID, Answers: model.Answers{}}
	} else if err != nil {
		return nil, fmt.Errorf("failed to load assessment progress: %w", err)
	}
	if progress.Answers == nil {
		progress.Answers = model.Answers{}
	}

	for id, value := range answers {
		progress.Answers[id] = value
	}
	progress.CurrentStep = min(max(step, 0), coaching.StepCount())
	progress.UpdatedAt = time.Now()
	if user != nil {
		progress.UserID = &user.ID
	}

	if err := s.repo.SaveProgress(ctx, progress); err != nil {
		return nil, fmt.Errorf("failed to save assessment progress: %w", err)
	}

	return progress, nil
}

func (s *AssessmentService) Progress(ctx context.Context, sessionID string) (*model.AssessmentProgress, error) {
	return s.repo.Progress(ctx, sessionID)
}

// Submit scores the session's saved answers merged with answers, stores the result and
// clears the saved progress. Signed-in users get the report by email.
func (s *AssessmentService) Submit(ctx context.Context, sessionID string, user *model.User, answers model.Answers) (*AssessmentReport, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSessionID
	}

	merged := model.Answers{}
	saved, err := s.repo.Progress(ctx, sessionID)
	switch {
	case err == nil:
		for id, value := range saved.Answers {
			merged[id] = value
		}
	case !errors.Is(err, repository.ErrAssessmentProgressNotFound):
		return nil, fmt.Errorf("failed to load assessment progress: %w", err)
	}
	for id, value := range answers {
		merged[id] = value
	}

	if len(merged) == 0 {
		return nil, ErrEmptyAssessment
	}

	result := coaching.ScoreAssessment(merged)
	result.SessionID = sessionID
	if user != nil {
		result.UserID = &user.ID
	}

	if err := s.repo.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to save assessment: %w", err)
	}

	if err := s.repo.DeleteProgress(ctx, sessionID); err != nil {
		slog.Warn("failed to clear assessment progress", "session_id", sessionID, "error", err)
	}

	report := &AssessmentReport{Result: result, Insights: coaching.Insights(result)}

	name := ""
	if user != nil {
		if profile, err := s.profileRepo.ByUserID(ctx, user.ID); err == nil {
			name = profile.Name
		}
	}

	if err := s.archive(ctx, name, report); err != nil {
		slog.Warn("failed to archive assessment report", "assessment_id", result.ID, "error", err)
	}

	if user != nil && s.emailService != nil {
		if err := s.emailService.SendAssessmentReport(ctx, user.Email, name, result, report.Insights); err != nil {
			slog.Error("failed to send assessment report", "user_id", user.ID, "error", err)
		}
	}

	slog.Info("assessment submitted",
		"session_id", sessionID,
		"authenticated", user != nil,
		"readiness", result.AIReadinessScore,
		"unanswered", len(result.UnansweredCategories),
	)

	return report, nil
}

// Latest returns the user's most recent assessment report.
func (s *AssessmentService) Latest(ctx context.Context, userID string) (*AssessmentReport, error) {
	result, err := s.repo.Latest(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &AssessmentReport{Result: result, Insights: coaching.Insights(result)}, nil
}

// ReportURL returns a temporary download link for the user's latest archived report.
func (s *AssessmentService) ReportURL(ctx context.Context, userID string) (string, error) {
	if s.reports == nil {
		return "", ErrReportsDisabled
	}

	result, err := s.repo.Latest(ctx, userID)
	if err != nil {
		return "", err
	}

	return s.reports.URL(ctx, reportKey(result.ID))
}

// archive stores the rendered report as a standalone HTML page.
func (s *AssessmentService) archive(ctx context.Context, name string, report *AssessmentReport) error {
	if s.reports == nil {
		return nil
	}

	subject, body := assessmentReportTemplate(name, s.appURL, s.appName, report.Result, report.Insights)
	rendered, err := s.markdown.HTML(body)
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	page := fmt.Sprintf("<!DOCTYPE html>\n<html><head><meta charset=\"utf-8\"><title>%s</title></head><body>\n%s</body></html>\n",
		html.EscapeString(subject), rendered)

	return s.reports.Save(ctx, reportKey(report.Result.ID), []byte(page), "text/html; charset=utf-8")
}

func reportKey(assessmentID string) string {
	return "reports/" + assessmentID + ".html"
}

// Claim attaches an anonymous session's result to a user who signed up afterwards.
func (s *AssessmentService) Claim(ctx context.Context, sessionID, userID string) error {
	return s.repo.ClaimSession(ctx, sessionID, userID)
}

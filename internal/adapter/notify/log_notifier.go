package notify

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/drivekit/drivekit/internal/core"
)

// LogNotifier records feedback requests in the structured log instead of
// sending mail. It stands in until a real delivery channel exists.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier constructs a log-backed notifier.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogNotifier{logger: logger}
}

var _ core.Notifier = (*LogNotifier)(nil)

// SendFeedbackRequest logs the request that would be sent to the student.
func (n *LogNotifier) SendFeedbackRequest(ctx context.Context, lesson core.Lesson, studentID uuid.UUID, instructor core.Instructor) error {
	n.logger.InfoContext(ctx, "feedback request",
		slog.String("lesson_id", lesson.ID.String()),
		slog.String("student_id", studentID.String()),
		slog.String("instructor", instructor.Name),
		slog.Time("lesson_date", lesson.Date),
	)
	return nil
}

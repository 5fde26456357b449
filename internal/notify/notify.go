// Package notify defines the fire-and-forget delivery sinks the coordinator
// drives. Implementations report failure only so the caller can log and skip;
// there is no response contract beyond that.
package notify

import (
	"context"

	"go.uber.org/zap"
)

// ContextRefs links a notification back to the records it concerns.
type ContextRefs struct {
	MatchID     string
	InterviewID string
}

// Notifier delivers an in-app notification to a user.
type Notifier interface {
	Notify(ctx context.Context, userID, title, message string, refs ContextRefs) error
}

// Mailer delivers an e-mail.
type Mailer interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// Messenger appends a message to a match's communication channel.
type Messenger interface {
	PostMessage(ctx context.Context, matchID, senderID, content string) error
}

// LogSink satisfies all three sink interfaces by writing structured log
// entries. It stands in for real delivery wiring in local and fixture runs.
type LogSink struct {
	logger *zap.Logger
}

// NewLogSink returns a sink that logs instead of delivering.
func NewLogSink(logger *zap.Logger) *LogSink {
	return &LogSink{logger: logger}
}

func (s *LogSink) Notify(_ context.Context, userID, title, message string, refs ContextRefs) error {
	s.logger.Info("notification",
		zap.String("user_id", userID),
		zap.String("title", title),
		zap.String("message", message),
		zap.String("match_id", refs.MatchID),
		zap.String("interview_id", refs.InterviewID),
	)
	return nil
}

func (s *LogSink) SendEmail(_ context.Context, to, subject, body string) error {
	s.logger.Info("email",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.Int("body_length", len(body)),
	)
	return nil
}

func (s *LogSink) PostMessage(_ context.Context, matchID, senderID, content string) error {
	s.logger.Info("match message",
		zap.String("match_id", matchID),
		zap.String("sender_id", senderID),
		zap.String("content", content),
	)
	return nil
}

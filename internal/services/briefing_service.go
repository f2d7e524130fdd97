package services

import (
	"context"
	"fmt"

	"github.com/heergandhi/axon-backend/internal/apperrors"
	"github.com/heergandhi/axon-backend/internal/domain"
	"github.com/heergandhi/axon-backend/internal/logger"
	"github.com/heergandhi/axon-backend/internal/mailer"
)

// BriefingStore lists users eligible for the morning briefing
type BriefingStore interface {
	ListBriefingRecipients(ctx context.Context) ([]domain.User, error)
}

// BriefingService fans the morning briefing out over email. Individual
// send failures are logged and skipped; one bad address must not starve
// the rest of the list.
type BriefingService struct {
	users BriefingStore
	mail  mailer.Mailer
}

func NewBriefingService(users BriefingStore, mail mailer.Mailer) *BriefingService {
	return &BriefingService{users: users, mail: mail}
}

func (s *BriefingService) SendMorningBriefings(ctx context.Context) (int, error) {
	users, err := s.users.ListBriefingRecipients(ctx)
	if err != nil {
		return 0, apperrors.NewDatabaseError(err)
	}
	if len(users) == 0 {
		logger.Info("no briefing recipients")
		return 0, nil
	}

	logger.Info("sending morning briefings", "recipients", len(users))
	sent := 0
	for _, user := range users {
		if user.Email == "" {
			continue
		}
		if err := s.mail.Send(ctx, user.Email, "AXON: Morning Protocol Briefing", briefingHTML(user)); err != nil {
			logger.Error("failed to send briefing", "user_id", user.ID, "error", err)
			continue
		}
		sent++
	}
	return sent, nil
}

func briefingHTML(user domain.User) string {
	name := user.DisplayName
	if name == "" {
		name = "Operator"
	}
	return fmt.Sprintf(`<div style="font-family: sans-serif; color: #333;">
  <h1>Good Morning, %s</h1>
  <p>Your executive protocol is ready. Initialize your stack to maintain momentum.</p>
  <br/>
  <a href="https://axonhabitsystem.vercel.app/dashboard"
     style="background: #000; color: #fff; padding: 10px 20px; text-decoration: none; border-radius: 5px;">
     Initialize Protocol
  </a>
</div>`, name)
}

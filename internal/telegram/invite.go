package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/go-telegram/bot"
	"github.com/osei-labs/paygate-bot/internal/config"
	"github.com/osei-labs/paygate-bot/internal/domain"
)

// InviteService mints join links for the configured group. Links expire after
// config.InviteExpiry and require admin approval of the join request, so a
// leaked link cannot be used to slip in unnoticed. Telegram does not allow a
// member limit together with join requests, which is why single use is
// enforced by approval rather than member_limit.
type InviteService struct {
	bot     *bot.Bot
	groupID string
}

func NewInviteService(b *bot.Bot, cfg *config.Config) *InviteService {
	return &InviteService{bot: b, groupID: cfg.TelegramGroupID}
}

func (s *InviteService) CreateInviteLink(ctx context.Context) (string, error) {
	link, err := s.bot.CreateChatInviteLink(ctx, &bot.CreateChatInviteLinkParams{
		ChatID:             s.groupID,
		ExpireDate:         int(time.Now().Add(config.InviteExpiry).Unix()),
		CreatesJoinRequest: true,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrInviteIssuance, err)
	}
	return link.InviteLink, nil
}

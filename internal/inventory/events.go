package inventory

import (
	"context"
	"log/slog"
	"time"

	"github.com/odyssey-erp/supplyhub/internal/shared"
)

func (s *Service) publish(ctx context.Context, id, action string, at time.Time) {
	if s.events == nil {
		return
	}
	evt := shared.ChangeEvent{Module: Module, ID: id, Action: action, At: at}
	if err := s.events.PublishChange(ctx, evt); err != nil {
		s.logger.Warn("publish inventory change", slog.String("id", id), slog.Any("error", err))
	}
}

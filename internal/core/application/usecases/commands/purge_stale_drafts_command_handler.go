package commands

import (
	"context"
	"time"
)

// PurgeStaleDraftsCommandHandler removes abandoned drafts in a single transaction.
type PurgeStaleDraftsCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewPurgeStaleDraftsCommandHandler(uowFactory OrderUoWFactory) PurgeStaleDraftsCommandHandler {
	return PurgeStaleDraftsCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// WithClock returns a copy of the handler that reads the current time from now.
func (h PurgeStaleDraftsCommandHandler) WithClock(now func() time.Time) PurgeStaleDraftsCommandHandler {
	h.now = now
	return h
}

// Handle returns the number of deleted drafts.
func (h PurgeStaleDraftsCommandHandler) Handle(ctx context.Context, cmd PurgeStaleDraftsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := h.now().Add(-cmd.OlderThan())
	deleted, err := uow.OrderRepository().DeleteDraftsNotUpdatedSince(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}

package commands

import (
	"errors"
	"fmt"
	"time"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrPurgeStaleDraftsCommandIsNotConstructed = errors.New(
	"PurgeStaleDraftsCommand must be created via NewPurgeStaleDraftsCommand constructor",
)

// PurgeStaleDraftsCommand deletes drafts nobody touched for longer than OlderThan.
// It is issued periodically by the stale draft purge job.
type PurgeStaleDraftsCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeStaleDraftsCommand requires a positive age.
func NewPurgeStaleDraftsCommand(olderThan time.Duration) (PurgeStaleDraftsCommand, error) {
	command := PurgeStaleDraftsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOlderThan(olderThan); err != nil {
		return PurgeStaleDraftsCommand{}, err
	}

	return command, nil
}

func (c PurgeStaleDraftsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeStaleDraftsCommandIsNotConstructed)
}

// OlderThan returns the minimum age since the last update of a purged draft.
func (c PurgeStaleDraftsCommand) OlderThan() time.Duration {
	return c.olderThan
}

func (c *PurgeStaleDraftsCommand) setOlderThan(olderThan time.Duration) error {
	if olderThan <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("olderThan", fmt.Errorf("%s is not positive", olderThan))
	}

	c.olderThan = olderThan
	return nil
}

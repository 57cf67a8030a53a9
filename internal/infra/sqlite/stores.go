package sqlite

import "github.com/turismocol/turismocol/internal/domain"

// Compile-time checks that DB satisfies the domain store boundaries.
var (
	_ domain.UserStore        = (*DB)(nil)
	_ domain.DestinationStore = (*DB)(nil)
	_ domain.InteractionStore = (*DB)(nil)
	_ domain.LedgerStore      = (*DB)(nil)
	_ domain.RewardStore      = (*DB)(nil)
)

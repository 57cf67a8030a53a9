package domain

// ─── Store Interfaces ───────────────────────────────────────────────────────
// These interfaces define the boundary between the application services and
// storage. Infrastructure implements them; services depend on them.

// UserStore abstracts user preference persistence.
type UserStore interface {
	UpsertUser(u *User) error
	GetUser(id string) (*User, error)
	CountUsers() (int64, error)
}

// DestinationStore abstracts the destination catalog.
type DestinationStore interface {
	InsertDestination(d *Destination) error
	GetDestination(rnt string) (*Destination, error)
	ListDestinations(limit int) ([]Destination, error)
	SearchDestinations(query, department, category string, limit int) ([]Destination, error)
	ListSubmittedBy(userID string) ([]Destination, error)
	SetSubmissionStatus(rnt string, status SubmissionStatus) (*Destination, error)
}

// InteractionStore abstracts the append-only interaction log.
type InteractionStore interface {
	InsertInteraction(in *Interaction) error
	ListInteractionsByUser(userID string) ([]Interaction, error)
	CountInteractions() (int64, error)
}

// LedgerStore abstracts the points ledger. Debit must evaluate the balance
// inside the same storage transaction that appends the entry.
type LedgerStore interface {
	Credit(userID string, amount int64, reason TransactionReason, ref string) (*PointTransaction, error)
	Debit(userID string, amount int64, reason TransactionReason, ref string) (*PointTransaction, error)
	Balance(userID string) (int64, error)
	History(userID string, limit int) ([]PointTransaction, error)
}

// RewardStore abstracts the rewards catalog and the atomic redemption unit:
// stock guard, balance-checked debit, stock increment and redemption record
// all commit or roll back together.
type RewardStore interface {
	UpsertReward(r *Reward) error
	GetReward(id string) (*Reward, error)
	ListRewards() ([]Reward, error)
	RedeemReward(userID, rewardID string) (*Redemption, *Reward, error)
}

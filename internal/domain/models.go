package domain

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

type ProjectStatus uint8

const (
	StatusActive ProjectStatus = iota
	StatusPaused
	StatusCompleted
	StatusCancelled
)

var statusNames = map[ProjectStatus]string{
	StatusActive:    "active",
	StatusPaused:    "paused",
	StatusCompleted: "completed",
	StatusCancelled: "cancelled",
}

func (s ProjectStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "unknown"
}

func ParseProjectStatus(s string) (ProjectStatus, bool) {
	for status, name := range statusNames {
		if name == s {
			return status, true
		}
	}
	return 0, false
}

// MetadataState tells how the off-chain name/description relate to the
// on-chain data hash.
type MetadataState string

const (
	MetadataVerified MetadataState = "verified"
	MetadataMismatch MetadataState = "mismatch"
	MetadataMissing  MetadataState = "missing"
)

type Project struct {
	ID              uint64
	Name            string
	Description     string
	DataHash        common.Hash
	AllocatedAmount *big.Int
	SpentAmount     *big.Int
	ProjectOwner    common.Address
	Approvers       []common.Address
	IsActive        bool
	Status          ProjectStatus
	CreatedAt       time.Time
	Metadata        MetadataState
}

// Remaining returns allocated minus spent, floored at zero.
func (p *Project) Remaining() *big.Int {
	allocated := p.AllocatedAmount
	if allocated == nil {
		allocated = new(big.Int)
	}
	spent := p.SpentAmount
	if spent == nil {
		spent = new(big.Int)
	}
	rest := new(big.Int).Sub(allocated, spent)
	if rest.Sign() < 0 {
		return new(big.Int)
	}
	return rest
}

type SpendingRecord struct {
	ProjectID       uint64
	Amount          *big.Int
	Category        string
	SpentBy         common.Address
	Timestamp       time.Time
	DescriptionHash common.Hash
	Approved        bool
}

type ProjectMetadata struct {
	ProjectID   uint64    `db:"project_id"  json:"project_id"`
	Name        string    `db:"name"        json:"name"`
	Description string    `db:"description" json:"description"`
	DataHash    string    `db:"data_hash"   json:"data_hash"`
	CreatedBy   string    `db:"created_by"  json:"created_by"`
	TxHash      string    `db:"tx_hash"     json:"tx_hash"`
	CreatedAt   time.Time `db:"created_at"  json:"created_at"`
}

type SpendingDetail struct {
	ID              string    `db:"id"               json:"id"`
	ProjectID       uint64    `db:"project_id"       json:"project_id"`
	AmountBase      string    `db:"amount_base"      json:"amount_base"`
	Category        string    `db:"category"         json:"category"`
	Description     string    `db:"description"      json:"description"`
	DescriptionHash string    `db:"description_hash" json:"description_hash"`
	SpentBy         string    `db:"spent_by"         json:"spent_by"`
	TxHash          string    `db:"tx_hash"          json:"tx_hash"`
	CreatedAt       time.Time `db:"created_at"       json:"created_at"`
}

const (
	RoleOfficial = "government_official"
	RoleAdmin    = "admin"
	RoleViewer   = "viewer"
)

func IsValidRole(role string) bool {
	return role == RoleOfficial || role == RoleAdmin || role == RoleViewer
}

type UserProfile struct {
	WalletAddress string    `db:"wallet_address"`
	Role          string    `db:"role"`
	CreatedAt     time.Time `db:"created_at"`
	LastLogin     time.Time `db:"last_login"`
}

// SpendingEntry joins an on-chain spending record with its off-chain detail.
type SpendingEntry struct {
	Record   SpendingRecord
	Detail   *SpendingDetail
	Verified bool
}

type ProjectDetails struct {
	Project  Project
	Spending []SpendingEntry
	Demo     bool
	Warnings []string
}

type Dashboard struct {
	Projects       []Project
	TotalAllocated *big.Int
	TotalSpent     *big.Int
	TotalRemaining *big.Int
	ActiveCount    int
	ChainID        uint64
	Demo           bool
	Warnings       []string
}

type CreateProjectInput struct {
	Name            string
	Description     string
	AllocatedAmount string
	ProjectOwner    string
}

type SpendInput struct {
	ProjectID   uint64
	Amount      string
	Category    string
	Description string
}

type OperationKind string

const (
	OpCreateProject OperationKind = "create_project"
	OpSpendFunds    OperationKind = "spend_funds"
)

type OperationStatus string

const (
	OpPending   OperationStatus = "pending"
	OpCommitted OperationStatus = "committed"
	OpPartial   OperationStatus = "partial"
	OpFailed    OperationStatus = "failed"
)

// Operation is one dual write (ledger, then off-chain store).
type Operation struct {
	ID        string
	Kind      OperationKind
	Status    OperationStatus
	ProjectID *uint64
	TxHash    string
	Payload   []byte
	Error     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type WriteResult struct {
	OperationID string
	TxHash      common.Hash
	ProjectID   *uint64
	Status      OperationStatus
	Warning     string
}

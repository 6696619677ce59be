package projectservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/GlebRadaev/fundtracker/internal/domain"
	"github.com/GlebRadaev/fundtracker/internal/journal"
	"github.com/GlebRadaev/fundtracker/internal/ledger"
	"github.com/GlebRadaev/fundtracker/internal/units"
	"github.com/GlebRadaev/fundtracker/pkg/commitment"
)

const (
	enrichLimit    = 8
	// maxCategoryLen matches spending.category VARCHAR(64).
	maxCategoryLen = 64
)

type Ledger interface {
	Read(ctx context.Context, fn func(ledger.Client) error) error
	Write(ctx context.Context, fn func(ledger.Client, *bind.TransactOpts) error) error
	ExpectedChainID() *big.Int
}

type MetadataRepo interface {
	Put(ctx context.Context, meta *domain.ProjectMetadata) error
	Get(ctx context.Context, id uint64) (*domain.ProjectMetadata, error)
}

type SpendingRepo interface {
	Create(ctx context.Context, detail *domain.SpendingDetail) (*domain.SpendingDetail, error)
	ListByProject(ctx context.Context, projectID uint64) ([]domain.SpendingDetail, error)
}

type Journal interface {
	Begin(ctx context.Context, kind domain.OperationKind, payload []byte) (*domain.Operation, error)
	Update(ctx context.Context, id string, u journal.Update) error
	Get(ctx context.Context, id string) (*domain.Operation, error)
	List(ctx context.Context, status domain.OperationStatus) ([]domain.Operation, error)
}

// Service composes the ledger with the off-chain store. metadata and
// spending are nil when the off-chain store is disabled.
type Service struct {
	ledger   Ledger
	metadata MetadataRepo
	spending SpendingRepo
	journal  Journal
	decimals int32
	demo     bool
	now      func() time.Time
}

func New(ledger Ledger, metadata MetadataRepo, spending SpendingRepo, journal Journal, decimals int32, demo bool) *Service {
	return &Service{
		ledger:   ledger,
		metadata: metadata,
		spending: spending,
		journal:  journal,
		decimals: decimals,
		demo:     demo,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) Decimals() int32 {
	return s.decimals
}

func (s *Service) offchainEnabled() bool {
	return s.metadata != nil && s.spending != nil
}

func (s *Service) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	var projects []domain.Project
	err := s.ledger.Read(ctx, func(c ledger.Client) error {
		var err error
		projects, err = c.ListProjects(ctx)
		return err
	})
	if err != nil {
		if s.demo && errors.Is(err, domain.ErrLedgerUnavailable) {
			zap.L().Warn("ledger unavailable, serving sample data", zap.Error(err))
			dashboard := summarize(demoProjects(s.decimals))
			dashboard.Demo = true
			dashboard.Warnings = []string{demoWarning}
			return dashboard, nil
		}
		zap.L().Error("failed to list projects", zap.Error(err))
		return nil, err
	}

	warnings := s.enrich(ctx, projects)
	dashboard := summarize(projects)
	dashboard.ChainID = s.ledger.ExpectedChainID().Uint64()
	dashboard.Warnings = warnings
	return dashboard, nil
}

// enrich attaches off-chain names and descriptions. Failures only produce
// warnings; the projects keep their ledger data.
func (s *Service) enrich(ctx context.Context, projects []domain.Project) []string {
	if len(projects) == 0 {
		return nil
	}
	if !s.offchainEnabled() {
		return []string{domain.ErrStoreUnavailable.Error() + ", showing ledger data only"}
	}

	var (
		mu       sync.Mutex
		failed   int
		firstErr error
	)
	var g errgroup.Group
	g.SetLimit(enrichLimit)
	for i := range projects {
		p := &projects[i]
		g.Go(func() error {
			meta, err := s.metadata.Get(ctx, p.ID)
			if err != nil {
				mu.Lock()
				failed++
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return nil
			}
			applyMetadata(p, meta)
			return nil
		})
	}
	_ = g.Wait()

	if failed == 0 {
		return nil
	}
	zap.L().Warn("metadata enrichment failed", zap.Int("failed", failed), zap.Error(firstErr))
	return []string{fmt.Sprintf("metadata unavailable for %d of %d projects: %v", failed, len(projects), firstErr)}
}

func applyMetadata(p *domain.Project, meta *domain.ProjectMetadata) {
	if meta == nil {
		p.Metadata = domain.MetadataMissing
		return
	}
	p.Name = meta.Name
	p.Description = meta.Description
	if commitment.VerifyProject(meta.Name, meta.Description, p.DataHash) {
		p.Metadata = domain.MetadataVerified
	} else {
		p.Metadata = domain.MetadataMismatch
	}
}

func summarize(projects []domain.Project) *domain.Dashboard {
	d := &domain.Dashboard{
		Projects:       projects,
		TotalAllocated: new(big.Int),
		TotalSpent:     new(big.Int),
		TotalRemaining: new(big.Int),
	}
	for i := range projects {
		p := &projects[i]
		if p.AllocatedAmount != nil {
			d.TotalAllocated.Add(d.TotalAllocated, p.AllocatedAmount)
		}
		if p.SpentAmount != nil {
			d.TotalSpent.Add(d.TotalSpent, p.SpentAmount)
		}
		d.TotalRemaining.Add(d.TotalRemaining, p.Remaining())
		if p.IsActive {
			d.ActiveCount++
		}
	}
	return d
}

func (s *Service) Project(ctx context.Context, id uint64) (*domain.ProjectDetails, error) {
	var (
		project *domain.Project
		records []domain.SpendingRecord
	)
	err := s.ledger.Read(ctx, func(c ledger.Client) error {
		var err error
		if project, err = c.GetProject(ctx, id); err != nil {
			return err
		}
		records, err = c.SpendingRecords(ctx, id)
		return err
	})
	if err != nil {
		if s.demo && errors.Is(err, domain.ErrLedgerUnavailable) {
			demo := demoProjects(s.decimals)
			if id < uint64(len(demo)) {
				return &domain.ProjectDetails{Project: demo[id], Demo: true, Warnings: []string{demoWarning}}, nil
			}
		}
		if !errors.Is(err, domain.ErrNotFound) {
			zap.L().Error("failed to read project", zap.Uint64("project", id), zap.Error(err))
		}
		return nil, err
	}

	details := &domain.ProjectDetails{Project: *project}
	if !s.offchainEnabled() {
		details.Spending = joinSpending(records, nil)
		details.Warnings = []string{domain.ErrStoreUnavailable.Error() + ", showing ledger data only"}
		return details, nil
	}

	var (
		meta        *domain.ProjectMetadata
		offchain    []domain.SpendingDetail
		metaErr     error
		spendingErr error
		g           errgroup.Group
	)
	g.Go(func() error {
		meta, metaErr = s.metadata.Get(ctx, id)
		return nil
	})
	g.Go(func() error {
		offchain, spendingErr = s.spending.ListByProject(ctx, id)
		return nil
	})
	_ = g.Wait()

	if metaErr != nil {
		zap.L().Warn("can't load project metadata", zap.Uint64("project", id), zap.Error(metaErr))
		details.Warnings = append(details.Warnings, fmt.Sprintf("metadata unavailable: %v", metaErr))
	} else {
		applyMetadata(&details.Project, meta)
	}
	if spendingErr != nil {
		zap.L().Warn("can't load spending details", zap.Uint64("project", id), zap.Error(spendingErr))
		details.Warnings = append(details.Warnings, fmt.Sprintf("spending details unavailable: %v", spendingErr))
	}
	details.Spending = joinSpending(records, offchain)
	return details, nil
}

// joinSpending pairs each on-chain record with an off-chain detail carrying
// the same description hash, in order.
func joinSpending(records []domain.SpendingRecord, offchain []domain.SpendingDetail) []domain.SpendingEntry {
	byHash := make(map[string][]int)
	for i, d := range offchain {
		key := strings.ToLower(d.DescriptionHash)
		byHash[key] = append(byHash[key], i)
	}

	entries := make([]domain.SpendingEntry, 0, len(records))
	for _, r := range records {
		entry := domain.SpendingEntry{Record: r}
		key := strings.ToLower(r.DescriptionHash.Hex())
		if queue := byHash[key]; len(queue) > 0 {
			detail := offchain[queue[0]]
			byHash[key] = queue[1:]
			entry.Detail = &detail
			entry.Verified = commitment.Verify(detail.Description, r.DescriptionHash)
		}
		entries = append(entries, entry)
	}
	return entries
}

func (s *Service) CreateProject(ctx context.Context, actor string, input domain.CreateProjectInput) (*domain.WriteResult, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: project name is required", domain.ErrInvalidInput)
	}
	amount, err := s.positiveAmount(input.AllocatedAmount)
	if err != nil {
		return nil, err
	}
	var owner common.Address
	if input.ProjectOwner != "" {
		if !common.IsHexAddress(input.ProjectOwner) {
			return nil, fmt.Errorf("%w: invalid project owner address", domain.ErrInvalidInput)
		}
		owner = common.HexToAddress(input.ProjectOwner)
	}

	dataHash := commitment.ProjectHash(name, input.Description)
	meta := domain.ProjectMetadata{
		Name:        name,
		Description: input.Description,
		DataHash:    dataHash.Hex(),
		CreatedBy:   strings.ToLower(actor),
		CreatedAt:   s.now(),
	}
	op, err := s.begin(ctx, domain.OpCreateProject, meta)
	if err != nil {
		return nil, err
	}

	var receipt *ledger.Receipt
	err = s.ledger.Write(ctx, func(c ledger.Client, opts *bind.TransactOpts) error {
		if owner == (common.Address{}) {
			owner = opts.From
		}
		if meta.CreatedBy == "" {
			meta.CreatedBy = strings.ToLower(opts.From.Hex())
		}
		var err error
		receipt, err = c.CreateProject(ctx, opts, dataHash, amount, owner)
		return err
	})
	if err != nil {
		s.fail(ctx, op.ID, err)
		return nil, err
	}

	result := &domain.WriteResult{OperationID: op.ID, TxHash: receipt.TxHash, ProjectID: receipt.ProjectID}
	meta.TxHash = receipt.TxHash.Hex()
	if receipt.ProjectID == nil {
		result.Status, result.Warning = s.settle(ctx, op.ID, receipt, meta, errors.New("created project id could not be resolved"))
		return result, nil
	}
	meta.ProjectID = *receipt.ProjectID
	result.Status, result.Warning = s.settle(ctx, op.ID, receipt, meta, s.store(ctx, func(ctx context.Context) error {
		return s.metadata.Put(ctx, &meta)
	}))
	zap.L().Info("project created", zap.Uint64("project", meta.ProjectID), zap.String("tx", meta.TxHash), zap.String("status", string(result.Status)))
	return result, nil
}

func (s *Service) SpendFunds(ctx context.Context, actor string, input domain.SpendInput) (*domain.WriteResult, error) {
	amount, err := s.positiveAmount(input.Amount)
	if err != nil {
		return nil, err
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", domain.ErrInvalidInput)
	}
	if utf8.RuneCountInString(category) > maxCategoryLen {
		return nil, fmt.Errorf("%w: category is longer than %d characters", domain.ErrInvalidInput, maxCategoryLen)
	}

	var project *domain.Project
	err = s.ledger.Read(ctx, func(c ledger.Client) error {
		var err error
		project, err = c.GetProject(ctx, input.ProjectID)
		return err
	})
	if err != nil {
		return nil, err
	}
	if !project.IsActive {
		return nil, domain.ErrProjectInactive
	}
	if remaining := project.Remaining(); amount.Cmp(remaining) > 0 {
		return nil, fmt.Errorf("%w: requested %s, remaining %s", domain.ErrInsufficientFunds,
			units.ToDisplay(amount, s.decimals), units.ToDisplay(remaining, s.decimals))
	}

	descriptionHash := commitment.DescriptionHash(input.Description)
	detail := domain.SpendingDetail{
		ID:              uuid.NewString(),
		ProjectID:       input.ProjectID,
		AmountBase:      amount.String(),
		Category:        category,
		Description:     input.Description,
		DescriptionHash: descriptionHash.Hex(),
		SpentBy:         strings.ToLower(actor),
		CreatedAt:       s.now(),
	}
	op, err := s.begin(ctx, domain.OpSpendFunds, detail)
	if err != nil {
		return nil, err
	}

	var receipt *ledger.Receipt
	err = s.ledger.Write(ctx, func(c ledger.Client, opts *bind.TransactOpts) error {
		if detail.SpentBy == "" {
			detail.SpentBy = strings.ToLower(opts.From.Hex())
		}
		var err error
		receipt, err = c.SpendFunds(ctx, opts, input.ProjectID, amount, category, descriptionHash)
		return err
	})
	if err != nil {
		s.fail(ctx, op.ID, err)
		return nil, err
	}

	id := input.ProjectID
	detail.TxHash = receipt.TxHash.Hex()
	result := &domain.WriteResult{OperationID: op.ID, TxHash: receipt.TxHash, ProjectID: &id}
	result.Status, result.Warning = s.settle(ctx, op.ID, receipt, detail, s.store(ctx, func(ctx context.Context) error {
		_, err := s.spending.Create(ctx, &detail)
		return err
	}))
	zap.L().Info("funds spent", zap.Uint64("project", id), zap.String("tx", detail.TxHash), zap.String("status", string(result.Status)))
	return result, nil
}

func (s *Service) SetProjectStatus(ctx context.Context, id uint64, status domain.ProjectStatus) (*domain.WriteResult, error) {
	if _, ok := domain.ParseProjectStatus(status.String()); !ok {
		return nil, fmt.Errorf("%w: unknown status %d", domain.ErrInvalidInput, status)
	}
	return s.ledgerOnly(ctx, &id, func(c ledger.Client, opts *bind.TransactOpts) (*ledger.Receipt, error) {
		return c.SetProjectStatus(ctx, opts, id, status)
	})
}

func (s *Service) AddApprover(ctx context.Context, id uint64, approver string) (*domain.WriteResult, error) {
	addr, err := parseAddress(approver)
	if err != nil {
		return nil, err
	}
	return s.ledgerOnly(ctx, &id, func(c ledger.Client, opts *bind.TransactOpts) (*ledger.Receipt, error) {
		return c.AddApprover(ctx, opts, id, addr)
	})
}

func (s *Service) AddAdmin(ctx context.Context, admin string) (*domain.WriteResult, error) {
	addr, err := parseAddress(admin)
	if err != nil {
		return nil, err
	}
	return s.ledgerOnly(ctx, nil, func(c ledger.Client, opts *bind.TransactOpts) (*ledger.Receipt, error) {
		return c.AddAdmin(ctx, opts, addr)
	})
}

func (s *Service) AddGovernmentOfficial(ctx context.Context, official string) (*domain.WriteResult, error) {
	addr, err := parseAddress(official)
	if err != nil {
		return nil, err
	}
	return s.ledgerOnly(ctx, nil, func(c ledger.Client, opts *bind.TransactOpts) (*ledger.Receipt, error) {
		return c.AddGovernmentOfficial(ctx, opts, addr)
	})
}

func (s *Service) Operations(ctx context.Context, status domain.OperationStatus) ([]domain.Operation, error) {
	switch status {
	case "", domain.OpPending, domain.OpCommitted, domain.OpPartial, domain.OpFailed:
	default:
		return nil, fmt.Errorf("%w: unknown operation status %q", domain.ErrInvalidInput, status)
	}
	ops, err := s.journal.List(ctx, status)
	if err != nil {
		zap.L().Error("failed to list operations", zap.Error(err))
		return nil, err
	}
	return ops, nil
}

func (s *Service) Operation(ctx context.Context, id string) (*domain.Operation, error) {
	return s.journal.Get(ctx, id)
}

func (s *Service) ledgerOnly(ctx context.Context, projectID *uint64, fn func(ledger.Client, *bind.TransactOpts) (*ledger.Receipt, error)) (*domain.WriteResult, error) {
	var receipt *ledger.Receipt
	err := s.ledger.Write(ctx, func(c ledger.Client, opts *bind.TransactOpts) error {
		var err error
		receipt, err = fn(c, opts)
		return err
	})
	if err != nil {
		zap.L().Warn("ledger write failed", zap.Error(err))
		return nil, err
	}
	return &domain.WriteResult{TxHash: receipt.TxHash, ProjectID: projectID, Status: domain.OpCommitted}, nil
}

func (s *Service) positiveAmount(display string) (*big.Int, error) {
	amount, err := units.ToBase(display, s.decimals)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if amount.Sign() == 0 {
		return nil, fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidInput)
	}
	return amount, nil
}

func parseAddress(raw string) (common.Address, error) {
	if !common.IsHexAddress(raw) {
		return common.Address{}, fmt.Errorf("%w: invalid address %q", domain.ErrInvalidInput, raw)
	}
	return common.HexToAddress(raw), nil
}

func (s *Service) begin(ctx context.Context, kind domain.OperationKind, doc any) (*domain.Operation, error) {
	payload, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	op, err := s.journal.Begin(ctx, kind, payload)
	if err != nil {
		zap.L().Error("failed to journal operation", zap.String("kind", string(kind)), zap.Error(err))
		return nil, err
	}
	return op, nil
}

func (s *Service) fail(ctx context.Context, id string, cause error) {
	err := s.journal.Update(context.WithoutCancel(ctx), id, journal.Update{Status: domain.OpFailed, Error: cause.Error()})
	if err != nil {
		zap.L().Error("failed to journal ledger failure", zap.String("id", id), zap.Error(err))
	}
}

// store runs the off-chain half of a write. It is not bound to the request
// lifetime: the ledger half has already happened.
func (s *Service) store(ctx context.Context, put func(context.Context) error) error {
	if !s.offchainEnabled() {
		return domain.ErrStoreUnavailable
	}
	if err := put(context.WithoutCancel(ctx)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStoreWriteFailed, err)
	}
	return nil
}

// settle records the outcome of a write whose ledger half succeeded.
func (s *Service) settle(ctx context.Context, id string, receipt *ledger.Receipt, doc any, storeErr error) (domain.OperationStatus, string) {
	update := journal.Update{Status: domain.OpCommitted, TxHash: receipt.TxHash.Hex(), ProjectID: receipt.ProjectID}
	var warning string
	if storeErr != nil {
		zap.L().Warn("ledger write committed but details were not saved", zap.String("tx", update.TxHash), zap.Error(storeErr))
		update.Status = domain.OpPartial
		update.Error = storeErr.Error()
		update.Payload, _ = json.Marshal(doc)
		warning = fmt.Sprintf("transaction confirmed but details were not saved (%v); run reconcile to retry", storeErr)
	}
	if err := s.journal.Update(context.WithoutCancel(ctx), id, update); err != nil {
		zap.L().Error("failed to journal operation outcome", zap.String("id", id), zap.Error(err))
	}
	return update.Status, warning
}

package authservice

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/GlebRadaev/fundtracker/internal/domain"
	"github.com/GlebRadaev/fundtracker/pkg/auth"
)

const (
	tokenTTL     = 24 * time.Hour
	challengeTTL = 5 * time.Minute

	challengeTitle = "Sign in to fundtracker"
	noncePrefix    = "Nonce: "
)

type challenge struct {
	address string
	message string
	expires time.Time
}

type Repo interface {
	Get(ctx context.Context, address string) (*domain.UserProfile, error)
	Upsert(ctx context.Context, profile *domain.UserProfile) (*domain.UserProfile, error)
	UpdateRole(ctx context.Context, address, role string) error
}

// Service logs wallets in by signature over a single-use challenge. A nil
// repo means the off-chain store is disabled and every call fails with
// ErrStoreUnavailable.
type Service struct {
	repo       Repo
	jwtService auth.JWTServiceInterface
	admins     map[string]bool
	now        func() time.Time

	mu         sync.Mutex
	challenges map[string]challenge
}

func New(repo Repo, jwtService auth.JWTServiceInterface, admins []string) *Service {
	set := make(map[string]bool, len(admins))
	for _, a := range admins {
		set[strings.ToLower(a)] = true
	}
	return &Service{
		repo:       repo,
		jwtService: jwtService,
		admins:     set,
		now:        func() time.Time { return time.Now().UTC() },
		challenges: make(map[string]challenge),
	}
}

// Challenge issues a nonce for address and returns the message its wallet
// has to sign. The nonce is accepted by Login once, within challengeTTL.
func (s *Service) Challenge(address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("%w: invalid address %q", domain.ErrInvalidInput, address)
	}
	address = strings.ToLower(address)
	nonce := uuid.NewString()
	message := fmt.Sprintf("%s\nAddress: %s\n%s%s", challengeTitle, address, noncePrefix, nonce)
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()
	for n, c := range s.challenges {
		if now.After(c.expires) {
			delete(s.challenges, n)
		}
	}
	s.challenges[nonce] = challenge{address: address, message: message, expires: now.Add(challengeTTL)}
	return message, nil
}

// consume reports whether message is an outstanding challenge for address
// and retires its nonce.
func (s *Service) consume(address, message string) bool {
	_, rest, ok := strings.Cut(message, noncePrefix)
	if !ok {
		return false
	}
	nonce, _, _ := strings.Cut(rest, "\n")

	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.challenges[nonce]
	if !ok || c.address != address {
		return false
	}
	delete(s.challenges, nonce)
	return c.message == message && !s.now().After(c.expires)
}

// Login verifies that signature was produced by address over a challenge
// issued to it, then creates the profile or refreshes its last login. New
// profiles start as viewers unless address is a configured admin.
func (s *Service) Login(ctx context.Context, address, message, signature string) (*domain.UserProfile, error) {
	if s.repo == nil {
		return nil, domain.ErrStoreUnavailable
	}
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message is required", domain.ErrInvalidInput)
	}
	if err := auth.VerifyPersonalSignature(address, message, signature); err != nil {
		zap.L().Info("login rejected", zap.String("address", address), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}

	address = strings.ToLower(address)
	if !s.consume(address, message) {
		zap.L().Info("login rejected", zap.String("address", address), zap.String("reason", "unknown challenge"))
		return nil, fmt.Errorf("%w: challenge is unknown or expired", domain.ErrUnauthorized)
	}
	role := domain.RoleViewer
	if s.admins[address] {
		role = domain.RoleAdmin
	}
	now := s.now()
	profile, err := s.repo.Upsert(ctx, &domain.UserProfile{
		WalletAddress: address,
		Role:          role,
		CreatedAt:     now,
		LastLogin:     now,
	})
	if err != nil {
		zap.L().Error("can't save user profile", zap.Error(err))
		return nil, err
	}

	zap.L().Info("user logged in", zap.String("address", address), zap.String("role", profile.Role))
	return profile, nil
}

func (s *Service) GenerateToken(profile *domain.UserProfile) (string, error) {
	token, err := s.jwtService.GenerateJWT(profile.WalletAddress, profile.Role, s.now().Add(tokenTTL))
	if err != nil {
		zap.L().Error("can't generate token", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) Profile(ctx context.Context, address string) (*domain.UserProfile, error) {
	if s.repo == nil {
		return nil, domain.ErrStoreUnavailable
	}
	profile, err := s.repo.Get(ctx, address)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrNotFound
	}
	return profile, nil
}

func (s *Service) UpdateRole(ctx context.Context, address, role string) error {
	if s.repo == nil {
		return domain.ErrStoreUnavailable
	}
	if !common.IsHexAddress(address) {
		return fmt.Errorf("%w: invalid address %q", domain.ErrInvalidInput, address)
	}
	if !domain.IsValidRole(role) {
		return fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, role)
	}
	if err := s.repo.UpdateRole(ctx, address, role); err != nil {
		return err
	}
	zap.L().Info("user role updated", zap.String("address", strings.ToLower(address)), zap.String("role", role))
	return nil
}

package classifier

import (
	"context"
	"fmt"
	"time"

	"github.com/alovak/cardcheck/card"
	"github.com/alovak/cardcheck/internal/audit"
	"github.com/alovak/cardcheck/internal/cardgen"
	"github.com/alovak/cardcheck/internal/isomsg"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

const (
	SourceAPI     = "api"
	SourceISO8583 = "iso8583"
)

type Service struct {
	repo    *audit.Repository
	hashKey []byte
	logger  *slog.Logger
	now     func() time.Time
}

func NewService(repo *audit.Repository, cfg *Config, logger *slog.Logger) *Service {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Service{
		repo:    repo,
		hashKey: []byte(cfg.PANHashKey),
		logger:  logger,
		now:     time.Now,
	}
}

// Checksum returns the Luhn sum of number.
func (s *Service) Checksum(ctx context.Context, number string) (int, error) {
	sum, err := card.ComputeChecksum(number)
	if err != nil {
		return 0, fmt.Errorf("computing checksum: %w", err)
	}
	return sum, nil
}

// Classify classifies number and records the verdict.
func (s *Service) Classify(ctx context.Context, number string) (*audit.Record, error) {
	digits, err := card.Digits(number)
	if err != nil {
		return nil, fmt.Errorf("classifying number: %w", err)
	}
	return s.record(ctx, number, card.ClassifyDigits(digits), card.Checksum(digits), SourceAPI)
}

// ClassifyISO8583 classifies the PAN carried in DE2 of a packed message.
func (s *Service) ClassifyISO8583(ctx context.Context, packed []byte) (*audit.Record, error) {
	pan, network, err := isomsg.Classify(packed)
	if err != nil {
		return nil, err
	}
	sum, err := card.ComputeChecksum(pan)
	if err != nil {
		return nil, fmt.Errorf("classifying DE2: %w", err)
	}
	return s.record(ctx, pan, network, sum, SourceISO8583)
}

func (s *Service) record(ctx context.Context, pan string, network card.Network, sum int, source string) (*audit.Record, error) {
	rec := &audit.Record{
		ID:        uuid.New().String(),
		PANHash:   cardgen.HashPANHMAC(pan, s.hashKey),
		MaskedPAN: cardgen.MaskPAN(pan),
		Network:   network,
		Checksum:  sum,
		Source:    source,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("recording verdict: %w", err)
	}

	s.logger.Debug("classified",
		slog.String("id", rec.ID),
		slog.String("number", rec.MaskedPAN),
		slog.String("network", rec.Network.String()),
		slog.String("source", source),
	)
	return rec, nil
}

func (s *Service) GetVerdict(ctx context.Context, id string) (*audit.Record, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding verdict: %w", err)
	}
	return rec, nil
}

// ListVerdicts returns the most recent verdicts, newest first.
func (s *Service) ListVerdicts(ctx context.Context, limit int) ([]*audit.Record, error) {
	list, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("listing verdicts: %w", err)
	}
	return list, nil
}

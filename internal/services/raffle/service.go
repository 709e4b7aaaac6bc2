package raffle

import (
	"context"
	"errors"
	"fmt"

	"github.com/raffleworks/tombola/internal/common/clock"
	"github.com/raffleworks/tombola/internal/common/uuid"
	"github.com/raffleworks/tombola/internal/models"
	"github.com/raffleworks/tombola/internal/oracle"
	raffleRepo "github.com/raffleworks/tombola/internal/repositories/raffle"
	"github.com/raffleworks/tombola/internal/shiftclock"
)

const (
	defaultMaxNumber       = 100
	defaultMaxDrawAttempts = 15
)

// service implements the Service interface
type service struct {
	config  *Config
	repo    raffleRepo.Repository
	oracle  oracle.Selector
	clock   clock.Clock
	uuidGen uuid.UUID
}

// New creates a new raffle service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Repo == nil {
		return nil, ErrNilRepository
	}
	if cfg.Oracle == nil {
		return nil, ErrNilOracle
	}

	// Fill defaults for optional knobs and deps
	maxNumber := cfg.MaxNumber
	if maxNumber == 0 {
		maxNumber = defaultMaxNumber
	}
	maxAttempts := cfg.MaxDrawAttempts
	if maxAttempts == 0 {
		maxAttempts = defaultMaxDrawAttempts
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}
	uuidGen := cfg.UUIDGenerator
	if uuidGen == nil {
		uuidGen = uuid.New()
	}

	return &service{
		config: &Config{
			MaxNumber:       maxNumber,
			MaxDrawAttempts: maxAttempts,
		},
		repo:    cfg.Repo,
		oracle:  cfg.Oracle,
		clock:   clk,
		uuidGen: uuidGen,
	}, nil
}

// resolveKey returns the given key, or the shift currently open on the
// service clock when the key is zero.
func (s *service) resolveKey(key models.ShiftKey) models.ShiftKey {
	if key.IsZero() {
		return shiftclock.At(s.clock.Now())
	}
	return key
}

// BuyTicket sells a number in a shift. Numbers outside [1, MaxNumber] are
// rejected before the ledger is touched.
func (s *service) BuyTicket(ctx context.Context, input *BuyTicketInput) (*BuyTicketOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Number < 1 || input.Number > s.config.MaxNumber {
		return nil, ErrInvalidNumber
	}

	key := s.resolveKey(input.Key)

	buyerName := input.BuyerName
	if buyerName == "" {
		buyerName = models.AnonymousBuyer
	}

	out, err := s.repo.AppendTicket(ctx, &raffleRepo.AppendTicketInput{
		Key: key,
		Ticket: &models.Ticket{
			ID:        s.uuidGen.NewUUID(),
			Number:    input.Number,
			BuyerName: buyerName,
		},
	})
	if err != nil {
		if errors.Is(err, raffleRepo.ErrNumberAlreadySold) {
			return nil, ErrNumberAlreadySold
		}
		return nil, err
	}

	return &BuyTicketOutput{
		Key:    key,
		Ticket: out.Ticket,
	}, nil
}

// DrawWinner draws the single winning number of a shift. Candidates come
// from the oracle and are accepted purely on monthly-uniqueness grounds:
// whether anyone bought the number does not filter the pick. The selection
// runs inside the draw transaction, so a conflicting concurrent commit
// restarts the whole attempt against a fresh snapshot.
func (s *service) DrawWinner(ctx context.Context, input *DrawWinnerInput) (*DrawWinnerOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	key := s.resolveKey(input.Key)

	selectCandidate := func(_ *models.ShiftRecord, used map[int]struct{}) (int, error) {
		for attempt := 0; attempt < s.config.MaxDrawAttempts; attempt++ {
			candidate := s.oracle.Pick()
			if _, taken := used[candidate]; taken {
				continue
			}
			return candidate, nil
		}
		return 0, ErrNoUniqueNumberFound
	}

	out, err := s.repo.CommitDraw(ctx, &raffleRepo.CommitDrawInput{
		Key:    key,
		Select: selectCandidate,
		Prize:  input.Prize,
	})
	if err != nil {
		switch {
		case errors.Is(err, raffleRepo.ErrAlreadyDrawn):
			return nil, ErrAlreadyDrawn
		case errors.Is(err, raffleRepo.ErrNoTicketsSold):
			return nil, ErrNoTicketsSold
		default:
			// ErrNoUniqueNumberFound comes back through the repository
			// unchanged; anything else is a store fault
			return nil, err
		}
	}

	message := fmt.Sprintf("number %d wins the %s shift of %s",
		out.WinningNumber, key.Shift.Label(), key.Date)
	if out.WinnerName != "" {
		message = fmt.Sprintf("%s, sold to %s", message, out.WinnerName)
	} else {
		message = fmt.Sprintf("%s, but nobody bought it", message)
	}

	return &DrawWinnerOutput{
		Key:           key,
		WinningNumber: out.WinningNumber,
		WinnerName:    out.WinnerName,
		Record:        out.Record,
		Message:       message,
	}, nil
}

// GetShift returns the ledger record of a shift
func (s *service) GetShift(ctx context.Context, input *GetShiftInput) (*GetShiftOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	key := s.resolveKey(input.Key)

	out, err := s.repo.GetShiftRecord(ctx, &raffleRepo.GetShiftRecordInput{Key: key})
	if err != nil {
		return nil, err
	}

	return &GetShiftOutput{
		Key:    key,
		Record: out.Record,
	}, nil
}

// ListWinners returns a month's winners board together with the register of
// numbers already used that month.
func (s *service) ListWinners(ctx context.Context, input *ListWinnersInput) (*ListWinnersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	month := input.Month
	if month == "" {
		month = s.clock.Now().Format("2006-01")
	}

	winners, err := s.repo.ListWinners(ctx, &raffleRepo.ListWinnersInput{Month: month})
	if err != nil {
		return nil, err
	}

	register, err := s.repo.WinnersForMonth(ctx, &raffleRepo.WinnersForMonthInput{Month: month})
	if err != nil {
		return nil, err
	}

	return &ListWinnersOutput{
		Month:   month,
		Numbers: register.Winners.Numbers,
		Winners: winners.Winners,
	}, nil
}

// ClaimPrize records the prize claim on a drawn shift
func (s *service) ClaimPrize(ctx context.Context, input *ClaimPrizeInput) (*ClaimPrizeOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	out, err := s.repo.MarkPrizeClaimed(ctx, &raffleRepo.MarkPrizeClaimedInput{
		Key:         input.Key,
		ClaimerID:   input.ClaimerID,
		ClaimerName: input.ClaimerName,
	})
	if err != nil {
		switch {
		case errors.Is(err, raffleRepo.ErrNotDrawn):
			return nil, ErrNotDrawn
		case errors.Is(err, raffleRepo.ErrPrizeAlreadyClaimed):
			return nil, ErrPrizeAlreadyClaimed
		default:
			return nil, err
		}
	}

	return &ClaimPrizeOutput{Winner: out.Winner}, nil
}

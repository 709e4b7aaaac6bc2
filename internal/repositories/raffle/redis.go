package raffle

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/raffleworks/tombola/internal/common/clock"
	"github.com/raffleworks/tombola/internal/models"
)

const (
	// Key prefixes for Redis
	dayKeyPrefix         = "raffle:day:"     // one JSON document per calendar date
	monthKeyPrefix       = "raffle:month:"   // set of winning numbers per month
	winnerIndexKeyPrefix = "raffle:winners:" // zset of drawn shifts per month, scored by draw time

	// How often an optimistic transaction is re-run after a conflicting
	// write before the operation gives up
	txMaxRetries = 25
)

// Domain errors surfaced by the repository
var (
	// ErrNumberAlreadySold is returned when a ticket number is already taken
	ErrNumberAlreadySold = errors.New("number already sold for this shift")

	// ErrAlreadyDrawn is returned when a shift already has a winner
	ErrAlreadyDrawn = errors.New("shift has already been drawn")

	// ErrNoTicketsSold is returned when a draw is attempted on an empty shift
	ErrNoTicketsSold = errors.New("no tickets sold for this shift")

	// ErrNotDrawn is returned when a claim is attempted before the draw
	ErrNotDrawn = errors.New("shift has not been drawn")

	// ErrPrizeAlreadyClaimed is returned when a prize was claimed before
	ErrPrizeAlreadyClaimed = errors.New("prize has already been claimed")

	// ErrTooMuchContention is returned when an optimistic transaction keeps
	// losing to concurrent writers past the retry budget
	ErrTooMuchContention = errors.New("transaction retried too many times")
)

// Config holds configuration for the Redis raffle repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock assigns commit timestamps; defaults to the system clock
	Clock clock.Clock
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
}

// NewRedis creates a new Redis-backed raffle repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	c := cfg.Clock
	if c == nil {
		c = &clock.DefaultClock{}
	}

	return &redisRepository{
		client: cfg.RedisClient,
		clock:  c,
	}, nil
}

// watch runs txf under WATCH of the given keys, re-running it whenever a
// concurrent writer invalidates the snapshot. Errors returned by txf pass
// through unchanged.
func (r *redisRepository) watch(ctx context.Context, txf func(tx *redis.Tx) error, keys ...string) error {
	for i := 0; i < txMaxRetries; i++ {
		err := r.client.Watch(ctx, txf, keys...)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return ErrTooMuchContention
}

// readDay loads the day document for a date, returning an empty document
// when none exists yet.
func readDay(ctx context.Context, c redis.Cmdable, date string) (*models.DayRecord, error) {
	payload, err := c.Get(ctx, dayKeyPrefix+date).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &models.DayRecord{}, nil
		}
		return nil, fmt.Errorf("failed to get day record %s: %w", date, err)
	}

	var day models.DayRecord
	if err := json.Unmarshal([]byte(payload), &day); err != nil {
		return nil, fmt.Errorf("failed to unmarshal day record %s: %w", date, err)
	}

	return &day, nil
}

func validateKey(key models.ShiftKey) error {
	if key.Date == "" {
		return errors.New("shift date cannot be empty")
	}
	if !key.Shift.Valid() {
		return fmt.Errorf("unknown shift %q", key.Shift)
	}
	return nil
}

// GetShiftRecord retrieves the record for a shift. A shift that has never
// been touched yields an empty record, never an error.
func (r *redisRepository) GetShiftRecord(ctx context.Context, input *GetShiftRecordInput) (*GetShiftRecordOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validateKey(input.Key); err != nil {
		return nil, err
	}

	day, err := readDay(ctx, r.client, input.Key.Date)
	if err != nil {
		return nil, err
	}

	return &GetShiftRecordOutput{
		Record: day.Record(input.Key.Shift),
	}, nil
}

// AppendTicket appends a ticket to a shift if its number is still free. The
// check and the append happen in one optimistic transaction, so two
// concurrent buyers of the same number cannot both succeed: the loser re-runs
// against the committed snapshot and observes the duplicate.
func (r *redisRepository) AppendTicket(ctx context.Context, input *AppendTicketInput) (*AppendTicketOutput, error) {
	if input == nil || input.Ticket == nil {
		return nil, errors.New("input and ticket cannot be nil")
	}
	if err := validateKey(input.Key); err != nil {
		return nil, err
	}

	dayKey := dayKeyPrefix + input.Key.Date

	var committed *models.Ticket
	txf := func(tx *redis.Tx) error {
		day, err := readDay(ctx, tx, input.Key.Date)
		if err != nil {
			return err
		}

		record := day.Record(input.Key.Shift)
		if record.HasTicket(input.Ticket.Number) {
			return ErrNumberAlreadySold
		}

		// The retry loop may run this body again, so mutate a copy
		ticket := *input.Ticket
		ticket.PurchasedAt = r.clock.Now()
		record.Tickets = append(record.Tickets, &ticket)

		payload, err := json.Marshal(day)
		if err != nil {
			return fmt.Errorf("failed to marshal day record: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, dayKey, payload, 0)
			return nil
		})
		if err != nil {
			return err
		}

		committed = &ticket
		return nil
	}

	if err := r.watch(ctx, txf, dayKey); err != nil {
		if errors.Is(err, ErrTooMuchContention) {
			return nil, fmt.Errorf("failed to append ticket: %w", err)
		}
		return nil, err
	}

	return &AppendTicketOutput{Ticket: committed}, nil
}

// CommitDraw atomically records a shift's winner. Inside one transaction it
// validates the shift preconditions, reads the month register, lets the
// caller's SelectFunc choose the number from that snapshot, resolves the
// winner name from the tickets, then writes the shift record, the month set
// and the winner index together. A conflicting concurrent write re-runs the
// whole body, SelectFunc included.
func (r *redisRepository) CommitDraw(ctx context.Context, input *CommitDrawInput) (*CommitDrawOutput, error) {
	if input == nil || input.Select == nil {
		return nil, errors.New("input and select function cannot be nil")
	}
	if err := validateKey(input.Key); err != nil {
		return nil, err
	}

	dayKey := dayKeyPrefix + input.Key.Date
	monthKey := monthKeyPrefix + input.Key.Month()
	indexKey := winnerIndexKeyPrefix + input.Key.Month()

	var out *CommitDrawOutput
	txf := func(tx *redis.Tx) error {
		day, err := readDay(ctx, tx, input.Key.Date)
		if err != nil {
			return err
		}

		record := day.Record(input.Key.Shift)
		if record.Drawn() {
			return ErrAlreadyDrawn
		}
		if len(record.Tickets) == 0 {
			return ErrNoTicketsSold
		}

		members, err := tx.SMembers(ctx, monthKey).Result()
		if err != nil {
			return fmt.Errorf("failed to get month register: %w", err)
		}
		used := make(map[int]struct{}, len(members))
		for _, m := range members {
			n, err := strconv.Atoi(m)
			if err != nil {
				return fmt.Errorf("corrupt month register entry %q: %w", m, err)
			}
			used[n] = struct{}{}
		}

		number, err := input.Select(record, used)
		if err != nil {
			return err
		}

		// The winner identity comes from the snapshot: a ticket bought after
		// this read is not seen. No ticket means a valid draw with nobody to
		// hand the prize to.
		winnerName := ""
		if ticket := record.TicketByNumber(number); ticket != nil {
			winnerName = ticket.BuyerName
			if winnerName == "" {
				winnerName = models.AnonymousBuyer
			}
		}

		drawnAt := r.clock.Now()
		record.WinningNumber = &number
		record.WinnerName = winnerName
		record.Prize = input.Prize
		record.DrawnAt = &drawnAt

		payload, err := json.Marshal(day)
		if err != nil {
			return fmt.Errorf("failed to marshal day record: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, dayKey, payload, 0)
			pipe.SAdd(ctx, monthKey, strconv.Itoa(number))
			pipe.ZAdd(ctx, indexKey, redis.Z{
				Score:  float64(drawnAt.UnixNano()),
				Member: input.Key.String(),
			})
			return nil
		})
		if err != nil {
			return err
		}

		out = &CommitDrawOutput{
			Record:        record,
			WinningNumber: number,
			WinnerName:    winnerName,
		}
		return nil
	}

	if err := r.watch(ctx, txf, dayKey, monthKey); err != nil {
		// Domain and SelectFunc errors pass through untouched; only the
		// contention path needs context added here
		if errors.Is(err, ErrTooMuchContention) {
			return nil, fmt.Errorf("failed to commit draw: %w", err)
		}
		return nil, err
	}

	return out, nil
}

// WinnersForMonth returns the set of winning numbers used in a month, empty
// for a month no draw has touched.
func (r *redisRepository) WinnersForMonth(ctx context.Context, input *WinnersForMonthInput) (*WinnersForMonthOutput, error) {
	if input == nil || input.Month == "" {
		return nil, errors.New("input and month cannot be empty")
	}

	members, err := r.client.SMembers(ctx, monthKeyPrefix+input.Month).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get month register: %w", err)
	}

	numbers := make([]int, 0, len(members))
	for _, m := range members {
		n, err := strconv.Atoi(m)
		if err != nil {
			return nil, fmt.Errorf("corrupt month register entry %q: %w", m, err)
		}
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	return &WinnersForMonthOutput{
		Winners: &models.MonthlyWinners{
			Month:   input.Month,
			Numbers: numbers,
		},
	}, nil
}

// ListWinners returns the drawn shifts of a month in draw order
func (r *redisRepository) ListWinners(ctx context.Context, input *ListWinnersInput) (*ListWinnersOutput, error) {
	if input == nil || input.Month == "" {
		return nil, errors.New("input and month cannot be empty")
	}

	members, err := r.client.ZRange(ctx, winnerIndexKeyPrefix+input.Month, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get winner index: %w", err)
	}

	if len(members) == 0 {
		return &ListWinnersOutput{Winners: []*models.Winner{}}, nil
	}

	keys := make([]models.ShiftKey, 0, len(members))
	dates := make(map[string]struct{})
	for _, m := range members {
		key, err := models.ParseShiftKey(m)
		if err != nil {
			return nil, fmt.Errorf("corrupt winner index entry: %w", err)
		}
		keys = append(keys, key)
		dates[key.Date] = struct{}{}
	}

	// Fetch all day documents in one round trip
	pipe := r.client.Pipeline()
	dayCommands := make(map[string]*redis.StringCmd, len(dates))
	for date := range dates {
		dayCommands[date] = pipe.Get(ctx, dayKeyPrefix+date)
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get day records: %w", err)
	}

	days := make(map[string]*models.DayRecord, len(dates))
	for date, cmd := range dayCommands {
		payload, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				// Index entry for a day document that no longer exists
				continue
			}
			return nil, fmt.Errorf("failed to get day record %s: %w", date, err)
		}

		var day models.DayRecord
		if err := json.Unmarshal([]byte(payload), &day); err != nil {
			return nil, fmt.Errorf("failed to unmarshal day record %s: %w", date, err)
		}
		days[date] = &day
	}

	winners := make([]*models.Winner, 0, len(keys))
	for _, key := range keys {
		day, ok := days[key.Date]
		if !ok {
			continue
		}
		if w := models.WinnerFromRecord(key, day.Record(key.Shift)); w != nil {
			winners = append(winners, w)
		}
	}

	return &ListWinnersOutput{Winners: winners}, nil
}

// MarkPrizeClaimed records the fulfilment claim on a drawn shift. The claim
// fields are pass-through state; the ledger only guards that the shift was
// drawn and not claimed before.
func (r *redisRepository) MarkPrizeClaimed(ctx context.Context, input *MarkPrizeClaimedInput) (*MarkPrizeClaimedOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}
	if err := validateKey(input.Key); err != nil {
		return nil, err
	}

	dayKey := dayKeyPrefix + input.Key.Date

	var out *MarkPrizeClaimedOutput
	txf := func(tx *redis.Tx) error {
		day, err := readDay(ctx, tx, input.Key.Date)
		if err != nil {
			return err
		}

		record := day.Record(input.Key.Shift)
		if !record.Drawn() {
			return ErrNotDrawn
		}
		if record.Claimed {
			return ErrPrizeAlreadyClaimed
		}

		claimedAt := r.clock.Now()
		record.Claimed = true
		record.ClaimerID = input.ClaimerID
		record.ClaimedBy = input.ClaimerName
		record.ClaimedAt = &claimedAt

		payload, err := json.Marshal(day)
		if err != nil {
			return fmt.Errorf("failed to marshal day record: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, dayKey, payload, 0)
			return nil
		})
		if err != nil {
			return err
		}

		out = &MarkPrizeClaimedOutput{
			Winner: models.WinnerFromRecord(input.Key, record),
		}
		return nil
	}

	if err := r.watch(ctx, txf, dayKey); err != nil {
		if errors.Is(err, ErrTooMuchContention) {
			return nil, fmt.Errorf("failed to mark prize claimed: %w", err)
		}
		return nil, err
	}

	return out, nil
}

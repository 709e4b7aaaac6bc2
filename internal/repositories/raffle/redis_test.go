package raffle

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/raffleworks/tombola/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository

	testKey models.ShiftKey
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testKey = models.ShiftKey{Date: "2024-05-01", Shift: models.ShiftMorning}
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

// pickNumber is a SelectFunc that always chooses the given number
func pickNumber(n int) SelectFunc {
	return func(_ *models.ShiftRecord, _ map[int]struct{}) (int, error) {
		return n, nil
	}
}

func (s *RedisRepositoryTestSuite) buyTicket(key models.ShiftKey, number int, name string) *models.Ticket {
	out, err := s.repo.AppendTicket(context.Background(), &AppendTicketInput{
		Key: key,
		Ticket: &models.Ticket{
			ID:        "ticket-" + name,
			Number:    number,
			BuyerName: name,
		},
	})
	s.Require().NoError(err)
	return out.Ticket
}

func (s *RedisRepositoryTestSuite) TestGetShiftRecordMissingKeyIsEmpty() {
	out, err := s.repo.GetShiftRecord(context.Background(), &GetShiftRecordInput{
		Key: s.testKey,
	})
	s.Require().NoError(err)
	s.Require().NotNil(out.Record)

	s.Empty(out.Record.Tickets)
	s.False(out.Record.Drawn())
}

func (s *RedisRepositoryTestSuite) TestAppendTicketAndReadBack() {
	ticket := s.buyTicket(s.testKey, 7, "Ana")
	s.Equal(7, ticket.Number)
	s.Equal("Ana", ticket.BuyerName)
	s.False(ticket.PurchasedAt.IsZero(), "purchase time is assigned at commit")

	out, err := s.repo.GetShiftRecord(context.Background(), &GetShiftRecordInput{
		Key: s.testKey,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Record.Tickets, 1)
	s.Equal(7, out.Record.Tickets[0].Number)
	s.Equal("Ana", out.Record.Tickets[0].BuyerName)
}

func (s *RedisRepositoryTestSuite) TestAppendTicketRejectsDuplicateNumber() {
	s.buyTicket(s.testKey, 42, "Ana")

	_, err := s.repo.AppendTicket(context.Background(), &AppendTicketInput{
		Key: s.testKey,
		Ticket: &models.Ticket{
			ID:     "ticket-bruno",
			Number: 42,
		},
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrNumberAlreadySold)

	// The rejected purchase left the ledger unchanged
	out, err := s.repo.GetShiftRecord(context.Background(), &GetShiftRecordInput{
		Key: s.testKey,
	})
	s.Require().NoError(err)
	s.Len(out.Record.Tickets, 1)
	s.Equal("Ana", out.Record.Tickets[0].BuyerName)
}

func (s *RedisRepositoryTestSuite) TestAppendTicketKeepsInsertionOrder() {
	s.buyTicket(s.testKey, 30, "Ana")
	s.buyTicket(s.testKey, 5, "Bruno")
	s.buyTicket(s.testKey, 77, "Carla")

	out, err := s.repo.GetShiftRecord(context.Background(), &GetShiftRecordInput{
		Key: s.testKey,
	})
	s.Require().NoError(err)
	s.Require().Len(out.Record.Tickets, 3)
	s.Equal(30, out.Record.Tickets[0].Number)
	s.Equal(5, out.Record.Tickets[1].Number)
	s.Equal(77, out.Record.Tickets[2].Number)
}

func (s *RedisRepositoryTestSuite) TestShiftsAreIndependentPartitions() {
	afternoon := models.ShiftKey{Date: s.testKey.Date, Shift: models.ShiftAfternoon}

	// The same number can be sold once per shift
	s.buyTicket(s.testKey, 42, "Ana")
	s.buyTicket(afternoon, 42, "Bruno")

	morning, err := s.repo.GetShiftRecord(context.Background(), &GetShiftRecordInput{Key: s.testKey})
	s.Require().NoError(err)
	s.Len(morning.Record.Tickets, 1)

	out, err := s.repo.GetShiftRecord(context.Background(), &GetShiftRecordInput{Key: afternoon})
	s.Require().NoError(err)
	s.Len(out.Record.Tickets, 1)
	s.Equal("Bruno", out.Record.Tickets[0].BuyerName)
}

func (s *RedisRepositoryTestSuite) TestConcurrentSaleOfSameNumber() {
	const buyers = 2

	var wg sync.WaitGroup
	errs := make(chan error, buyers)

	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			_, err := s.repo.AppendTicket(context.Background(), &AppendTicketInput{
				Key: s.testKey,
				Ticket: &models.Ticket{
					ID:     "ticket-" + string(rune('a'+id)),
					Number: 42,
				},
			})
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	var sold, rejected int
	for err := range errs {
		switch {
		case err == nil:
			sold++
		case errors.Is(err, ErrNumberAlreadySold):
			rejected++
		default:
			s.FailNowf("unexpected error", "%v", err)
		}
	}
	s.Equal(1, sold)
	s.Equal(1, rejected)

	out, err := s.repo.GetShiftRecord(context.Background(), &GetShiftRecordInput{Key: s.testKey})
	s.Require().NoError(err)
	s.Len(out.Record.Tickets, 1)
	s.Equal(42, out.Record.Tickets[0].Number)
}

func (s *RedisRepositoryTestSuite) TestCommitDrawHappyPath() {
	s.buyTicket(s.testKey, 7, "Ana")
	s.buyTicket(s.testKey, 19, "")

	out, err := s.repo.CommitDraw(context.Background(), &CommitDrawInput{
		Key:    s.testKey,
		Select: pickNumber(7),
		Prize:  "free breakfast",
	})
	s.Require().NoError(err)
	s.Equal(7, out.WinningNumber)
	s.Equal("Ana", out.WinnerName)
	s.Require().NotNil(out.Record.DrawnAt)
	s.Equal("free breakfast", out.Record.Prize)

	// The winner survives a fresh read
	read, err := s.repo.GetShiftRecord(context.Background(), &GetShiftRecordInput{Key: s.testKey})
	s.Require().NoError(err)
	s.Require().NotNil(read.Record.WinningNumber)
	s.Equal(7, *read.Record.WinningNumber)
	s.Equal("Ana", read.Record.WinnerName)

	// The month register picked up the number in the same commit
	month, err := s.repo.WinnersForMonth(context.Background(), &WinnersForMonthInput{Month: "2024-05"})
	s.Require().NoError(err)
	s.Equal([]int{7}, month.Winners.Numbers)
}

func (s *RedisRepositoryTestSuite) TestCommitDrawAnonymousWinner() {
	s.buyTicket(s.testKey, 19, "")

	out, err := s.repo.CommitDraw(context.Background(), &CommitDrawInput{
		Key:    s.testKey,
		Select: pickNumber(19),
	})
	s.Require().NoError(err)
	s.Equal(models.AnonymousBuyer, out.WinnerName)
}

func (s *RedisRepositoryTestSuite) TestCommitDrawUnsoldWinningNumber() {
	s.buyTicket(s.testKey, 7, "Ana")

	// The oracle is blind to sales: an unsold number is a valid draw with
	// nobody to hand the prize to
	out, err := s.repo.CommitDraw(context.Background(), &CommitDrawInput{
		Key:    s.testKey,
		Select: pickNumber(55),
	})
	s.Require().NoError(err)
	s.Equal(55, out.WinningNumber)
	s.Equal("", out.WinnerName)

	month, err := s.repo.WinnersForMonth(context.Background(), &WinnersForMonthInput{Month: "2024-05"})
	s.Require().NoError(err)
	s.Equal([]int{55}, month.Winners.Numbers)
}

func (s *RedisRepositoryTestSuite) TestCommitDrawEmptyShift() {
	called := false
	_, err := s.repo.CommitDraw(context.Background(), &CommitDrawInput{
		Key: s.testKey,
		Select: func(_ *models.ShiftRecord, _ map[int]struct{}) (int, error) {
			called = true
			return 1, nil
		},
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrNoTicketsSold)
	s.False(called, "selection must not run for an empty shift")
}

func (s *RedisRepositoryTestSuite) TestCommitDrawIsIdempotentPerShift() {
	s.buyTicket(s.testKey, 7, "Ana")
	s.buyTicket(s.testKey, 19, "Bruno")

	_, err := s.repo.CommitDraw(context.Background(), &CommitDrawInput{
		Key:    s.testKey,
		Select: pickNumber(7),
	})
	s.Require().NoError(err)

	_, err = s.repo.CommitDraw(context.Background(), &CommitDrawInput{
		Key:    s.testKey,
		Select: pickNumber(19),
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrAlreadyDrawn)

	// The first winner is untouched
	read, err := s.repo.GetShiftRecord(context.Background(), &GetShiftRecordInput{Key: s.testKey})
	s.Require().NoError(err)
	s.Require().NotNil(read.Record.WinningNumber)
	s.Equal(7, *read.Record.WinningNumber)
}

func (s *RedisRepositoryTestSuite) TestCommitDrawPassesMonthRegisterToSelect() {
	s.buyTicket(s.testKey, 7, "Ana")
	_, err := s.repo.CommitDraw(context.Background(), &CommitDrawInput{
		Key:    s.testKey,
		Select: pickNumber(7),
	})
	s.Require().NoError(err)

	night := models.ShiftKey{Date: s.testKey.Date, Shift: models.ShiftNight}
	s.buyTicket(night, 19, "Bruno")

	var seen map[int]struct{}
	out, err := s.repo.CommitDraw(context.Background(), &CommitDrawInput{
		Key: night,
		Select: func(_ *models.ShiftRecord, used map[int]struct{}) (int, error) {
			seen = used
			return 19, nil
		},
	})
	s.Require().NoError(err)
	s.Equal(19, out.WinningNumber)
	s.Contains(seen, 7, "previous winner must be visible to the selection")
}

func (s *RedisRepositoryTestSuite) TestCommitDrawSelectErrorCommitsNothing() {
	s.buyTicket(s.testKey, 7, "Ana")

	selectErr := errors.New("no unique number found")
	_, err := s.repo.CommitDraw(context.Background(), &CommitDrawInput{
		Key: s.testKey,
		Select: func(_ *models.ShiftRecord, _ map[int]struct{}) (int, error) {
			return 0, selectErr
		},
	})
	s.Require().Error(err)
	s.ErrorIs(err, selectErr)

	// No partial state: winner unset, register untouched, still drawable
	read, err := s.repo.GetShiftRecord(context.Background(), &GetShiftRecordInput{Key: s.testKey})
	s.Require().NoError(err)
	s.False(read.Record.Drawn())

	month, err := s.repo.WinnersForMonth(context.Background(), &WinnersForMonthInput{Month: "2024-05"})
	s.Require().NoError(err)
	s.Empty(month.Winners.Numbers)

	out, err := s.repo.CommitDraw(context.Background(), &CommitDrawInput{
		Key:    s.testKey,
		Select: pickNumber(7),
	})
	s.Require().NoError(err)
	s.Equal(7, out.WinningNumber)
}

func (s *RedisRepositoryTestSuite) TestMonthRegisterGrowsMonotonically() {
	shifts := []models.Shift{models.ShiftMorning, models.ShiftAfternoon, models.ShiftNight}
	numbers := []int{7, 19, 64}

	var previous []int
	for i, shift := range shifts {
		key := models.ShiftKey{Date: s.testKey.Date, Shift: shift}
		s.buyTicket(key, numbers[i], "Ana")

		_, err := s.repo.CommitDraw(context.Background(), &CommitDrawInput{
			Key:    key,
			Select: pickNumber(numbers[i]),
		})
		s.Require().NoError(err)

		month, err := s.repo.WinnersForMonth(context.Background(), &WinnersForMonthInput{Month: "2024-05"})
		s.Require().NoError(err)
		s.Subset(month.Winners.Numbers, previous, "register only grows")
		s.Len(month.Winners.Numbers, i+1)
		previous = month.Winners.Numbers
	}
}

func (s *RedisRepositoryTestSuite) TestWinnersForMonthUnseenMonthIsEmpty() {
	out, err := s.repo.WinnersForMonth(context.Background(), &WinnersForMonthInput{Month: "2030-01"})
	s.Require().NoError(err)
	s.Equal("2030-01", out.Winners.Month)
	s.Empty(out.Winners.Numbers)
}

func (s *RedisRepositoryTestSuite) TestListWinnersInDrawOrder() {
	night := models.ShiftKey{Date: "2024-05-02", Shift: models.ShiftNight}

	s.buyTicket(s.testKey, 7, "Ana")
	s.buyTicket(night, 19, "Bruno")

	_, err := s.repo.CommitDraw(context.Background(), &CommitDrawInput{
		Key:    s.testKey,
		Select: pickNumber(7),
		Prize:  "breakfast",
	})
	s.Require().NoError(err)

	_, err = s.repo.CommitDraw(context.Background(), &CommitDrawInput{
		Key:    night,
		Select: pickNumber(19),
	})
	s.Require().NoError(err)

	out, err := s.repo.ListWinners(context.Background(), &ListWinnersInput{Month: "2024-05"})
	s.Require().NoError(err)
	s.Require().Len(out.Winners, 2)

	s.Equal("2024-05-01", out.Winners[0].Date)
	s.Equal(models.ShiftMorning, out.Winners[0].Shift)
	s.Equal(7, out.Winners[0].WinningNumber)
	s.Equal("Ana", out.Winners[0].WinnerName)
	s.Equal("breakfast", out.Winners[0].Prize)

	s.Equal("2024-05-02", out.Winners[1].Date)
	s.Equal(models.ShiftNight, out.Winners[1].Shift)
	s.Equal(19, out.Winners[1].WinningNumber)
}

func (s *RedisRepositoryTestSuite) TestListWinnersEmptyMonth() {
	out, err := s.repo.ListWinners(context.Background(), &ListWinnersInput{Month: "2030-01"})
	s.Require().NoError(err)
	s.Empty(out.Winners)
}

func (s *RedisRepositoryTestSuite) TestMarkPrizeClaimed() {
	s.buyTicket(s.testKey, 7, "Ana")
	_, err := s.repo.CommitDraw(context.Background(), &CommitDrawInput{
		Key:    s.testKey,
		Select: pickNumber(7),
	})
	s.Require().NoError(err)

	out, err := s.repo.MarkPrizeClaimed(context.Background(), &MarkPrizeClaimedInput{
		Key:         s.testKey,
		ClaimerID:   "user-1",
		ClaimerName: "Ana",
	})
	s.Require().NoError(err)
	s.True(out.Winner.Claimed)
	s.Equal("user-1", out.Winner.ClaimerID)
	s.Equal("Ana", out.Winner.ClaimedBy)
	s.Require().NotNil(out.Winner.ClaimedAt)

	// Claiming twice is rejected
	_, err = s.repo.MarkPrizeClaimed(context.Background(), &MarkPrizeClaimedInput{
		Key:       s.testKey,
		ClaimerID: "user-2",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrPrizeAlreadyClaimed)
}

func (s *RedisRepositoryTestSuite) TestMarkPrizeClaimedBeforeDraw() {
	s.buyTicket(s.testKey, 7, "Ana")

	_, err := s.repo.MarkPrizeClaimed(context.Background(), &MarkPrizeClaimedInput{
		Key:       s.testKey,
		ClaimerID: "user-1",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrNotDrawn)
}

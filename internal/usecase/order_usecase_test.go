package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mlbbstore/internal/adapter/repository"
	"mlbbstore/internal/domain/entity"
	"mlbbstore/pkg/errors"
)

func newOrderTestEnv(t *testing.T) (*OrderUseCase, *repository.MemoryAccountRepository, *repository.MemoryOrderRepository) {
	t.Helper()

	accountRepo := repository.NewMemoryAccountRepository()
	orderRepo := repository.NewMemoryOrderRepository()
	return NewOrderUseCase(orderRepo, accountRepo), accountRepo, orderRepo
}

func seedAvailableAccount(t *testing.T, repo *repository.MemoryAccountRepository) *entity.Account {
	t.Helper()

	account := &entity.Account{
		Title:       gofakeit.Sentence(3),
		Rank:        "Mythic",
		Price:       250000,
		IsAvailable: true,
	}
	require.NoError(t, repo.Create(context.Background(), account))
	return account
}

func TestCreateOrderClaimsAccount(t *testing.T) {
	uc, accountRepo, _ := newOrderTestEnv(t)
	account := seedAvailableAccount(t, accountRepo)

	order, err := uc.CreateOrder(context.Background(), CreateOrderInput{
		AccountID: account.ID,
		BuyerName: gofakeit.Name(),
		Whatsapp:  gofakeit.Phone(),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, entity.OrderStatusPending, order.Status)

	got, err := accountRepo.GetByID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.False(t, got.IsAvailable)
}

func TestCreateOrderUnavailableAccount(t *testing.T) {
	uc, accountRepo, orderRepo := newOrderTestEnv(t)

	account := &entity.Account{Title: "sold", Rank: "Epic", Price: 100000, IsAvailable: false}
	require.NoError(t, accountRepo.Create(context.Background(), account))

	_, err := uc.CreateOrder(context.Background(), CreateOrderInput{
		AccountID: account.ID,
		BuyerName: "Budi",
		Whatsapp:  "+62811111111",
	})
	assert.True(t, errors.Is(err, "NOT_FOUND"))
	assert.Equal(t, 0, orderRepo.Len())
}

func TestCreateOrderUnknownAccount(t *testing.T) {
	uc, _, orderRepo := newOrderTestEnv(t)

	for _, id := range []string{"does-not-exist", "bad/id", ""} {
		_, err := uc.CreateOrder(context.Background(), CreateOrderInput{
			AccountID: id,
			BuyerName: "Budi",
			Whatsapp:  "+62811111111",
		})
		assert.True(t, errors.Is(err, "NOT_FOUND"), "id %q", id)
	}
	assert.Equal(t, 0, orderRepo.Len())
}

func TestCreateOrderValidation(t *testing.T) {
	uc, accountRepo, _ := newOrderTestEnv(t)
	account := seedAvailableAccount(t, accountRepo)

	_, err := uc.CreateOrder(context.Background(), CreateOrderInput{
		AccountID: account.ID,
		Whatsapp:  "+62811111111",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.CreateOrder(context.Background(), CreateOrderInput{
		AccountID: account.ID,
		BuyerName: "Budi",
	})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	// Failed validation must not claim the account
	got, err := accountRepo.GetByID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.True(t, got.IsAvailable)
}

func TestCreateOrderKeepsExplicitStatus(t *testing.T) {
	uc, accountRepo, _ := newOrderTestEnv(t)
	account := seedAvailableAccount(t, accountRepo)

	order, err := uc.CreateOrder(context.Background(), CreateOrderInput{
		AccountID: account.ID,
		BuyerName: "Budi",
		Whatsapp:  "+62811111111",
		Status:    "processed",
	})
	require.NoError(t, err)
	assert.Equal(t, "processed", order.Status)
}

// Two concurrent orders for one account: exactly one wins. The claim is a
// conditional availability flip, so the double-sell race of a plain
// check-then-write sequence cannot happen.
func TestCreateOrderConcurrentSingleWinner(t *testing.T) {
	uc, accountRepo, orderRepo := newOrderTestEnv(t)
	account := seedAvailableAccount(t, accountRepo)

	const buyers = 8

	var wg sync.WaitGroup
	errs := make([]error, buyers)

	for i := 0; i < buyers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.CreateOrder(context.Background(), CreateOrderInput{
				AccountID: account.ID,
				BuyerName: gofakeit.Name(),
				Whatsapp:  gofakeit.Phone(),
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.True(t, errors.Is(err, "NOT_FOUND"))
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, orderRepo.Len())
}

func TestListOrders(t *testing.T) {
	uc, accountRepo, _ := newOrderTestEnv(t)

	first := seedAvailableAccount(t, accountRepo)
	second := seedAvailableAccount(t, accountRepo)

	_, err := uc.CreateOrder(context.Background(), CreateOrderInput{
		AccountID: first.ID, BuyerName: "Budi", Whatsapp: "+62811111111",
	})
	require.NoError(t, err)

	_, err = uc.CreateOrder(context.Background(), CreateOrderInput{
		AccountID: second.ID, BuyerName: "Sari", Whatsapp: "+62822222222", Status: "completed",
	})
	require.NoError(t, err)

	pending, err := uc.ListOrders(context.Background(), "pending")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, first.ID, pending[0].AccountID)

	all, err := uc.ListOrders(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

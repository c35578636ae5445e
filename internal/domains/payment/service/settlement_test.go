package service_test

import (
	"context"
	"errors"
	"kasaglow/internal/domains/payment/model"
	"kasaglow/internal/domains/payment/service"
	wizardDto "kasaglow/internal/domains/wizard/model/dto"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countingSettlement(approved, failed *atomic.Int32) *service.Settlement {
	return service.NewSettlement(
		func(_ context.Context, receipt model.Receipt) (wizardDto.SessionResponse, error) {
			approved.Add(1)

			return wizardDto.SessionResponse{ID: receipt.Reference, Step: 5}, nil
		},
		func(_ context.Context, cause error) (wizardDto.SessionResponse, error) {
			failed.Add(1)

			return wizardDto.SessionResponse{Step: 4, PaymentError: cause.Error()}, nil
		},
	)
}

func TestSettlement_FirstOutcomeWins(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		first        string
		wantApproved int32
		wantFailed   int32
	}{
		{name: "approve then fail", first: "approve", wantApproved: 1},
		{name: "fail then approve", first: "fail", wantFailed: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var approved, failed atomic.Int32
			settlement := countingSettlement(&approved, &failed)

			approve := func() error {
				_, err := settlement.Approve(ctx, model.Receipt{Reference: "s-1"})

				return err
			}
			fail := func() error {
				_, err := settlement.Fail(ctx, errors.New("declined"))

				return err
			}

			first, second := approve, fail
			if tt.first == "fail" {
				first, second = fail, approve
			}

			require.NoError(t, first())
			assert.ErrorIs(t, second(), service.ErrAlreadySettled)
			assert.ErrorIs(t, first(), service.ErrAlreadySettled)

			assert.Equal(t, tt.wantApproved, approved.Load())
			assert.Equal(t, tt.wantFailed, failed.Load())
		})
	}
}

func TestSettlement_Concurrent(t *testing.T) {
	var approved, failed atomic.Int32
	settlement := countingSettlement(&approved, &failed)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			if i%2 == 0 {
				_, _ = settlement.Approve(context.Background(), model.Receipt{})
			} else {
				_, _ = settlement.Fail(context.Background(), errors.New("declined"))
			}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, int32(1), approved.Load()+failed.Load())
}

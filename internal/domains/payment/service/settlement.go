package service

import (
	"context"
	"kasaglow/internal/domains/payment/model"
	wizardDto "kasaglow/internal/domains/wizard/model/dto"
	"kasaglow/shared/failure"
	"sync"
)

var ErrAlreadySettled = failure.Conflict("payment already settled")

type (
	approveFunc func(ctx context.Context, receipt model.Receipt) (wizardDto.SessionResponse, error)
	failFunc    func(ctx context.Context, cause error) (wizardDto.SessionResponse, error)
)

// Settlement delivers the outcome of one payment attempt exactly once. The
// first Approve or Fail wins and later calls return ErrAlreadySettled.
type Settlement struct {
	once      sync.Once
	onApprove approveFunc
	onFail    failFunc
}

func NewSettlement(onApprove approveFunc, onFail failFunc) *Settlement {
	return &Settlement{
		onApprove: onApprove,
		onFail:    onFail,
	}
}

func (s *Settlement) Approve(ctx context.Context, receipt model.Receipt) (res wizardDto.SessionResponse, err error) {
	err = ErrAlreadySettled

	s.once.Do(func() {
		res, err = s.onApprove(ctx, receipt)
	})

	return res, err
}

func (s *Settlement) Fail(ctx context.Context, cause error) (res wizardDto.SessionResponse, err error) {
	err = ErrAlreadySettled

	s.once.Do(func() {
		res, err = s.onFail(ctx, cause)
	})

	return res, err
}

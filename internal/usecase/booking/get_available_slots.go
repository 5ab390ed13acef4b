package booking

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/appointment-booking/internal/domain/booking"
	"github.com/BruksfildServices01/appointment-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/appointment-booking/internal/infra/cache"
)

type GetAvailableSlots struct {
	repo  domain.Repository
	cache cache.SlotsCache
}

func NewGetAvailableSlots(
	repo domain.Repository,
	slotsCache cache.SlotsCache,
) *GetAvailableSlots {
	return &GetAvailableSlots{
		repo:  repo,
		cache: slotsCache,
	}
}

// Execute returns the open slots for one date: the fixed vocabulary minus
// whatever is already booked, keeping chronological order.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	date time.Time,
) ([]string, error) {

	if cached, ok := uc.cache.Get(ctx, date); ok {
		return cached, nil
	}

	booked, err := uc.repo.ListBookedSlots(ctx, date)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(booked))
	for _, slot := range booked {
		taken[slot] = struct{}{}
	}

	available := []string{}
	for _, slot := range schedule.Slots() {
		if _, ok := taken[slot]; !ok {
			available = append(available, slot)
		}
	}

	uc.cache.Set(ctx, date, available)

	return available, nil
}

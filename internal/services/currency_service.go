package services

import (
	"context"

	"wantly_backend/internal/currency"
	"wantly_backend/internal/services/dto"
	"wantly_backend/pkg/apperrors"
)

const currencyDomain = "currency"

type CurrencyService interface {
	GetRates(ctx context.Context) (*dto.CurrencyRatesResponse, error)
}

type currencyService struct {
	rates currency.RateSource
}

func NewCurrencyService(rates currency.RateSource) CurrencyService {
	return &currencyService{rates: rates}
}

func (s *currencyService) GetRates(ctx context.Context) (*dto.CurrencyRatesResponse, error) {
	snapshot, err := s.rates.Snapshot(ctx)
	if err != nil {
		return nil, apperrors.ErrExternalService(err, currencyDomain, "rate snapshot unavailable")
	}

	resp := &dto.CurrencyRatesResponse{
		Reference: currency.Reference,
		Rates:     make(map[string]float64, len(snapshot.Rates)),
		FetchedAt: snapshot.FetchedAt,
	}
	for _, rate := range snapshot.Rates {
		resp.Rates[rate.Currency] = rate.Rate
	}
	return resp, nil
}

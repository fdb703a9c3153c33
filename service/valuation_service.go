package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"

	"policy-valuation/domain"
	"policy-valuation/repository"
)

type ValuationService struct {
	tables repository.ReferenceTableRepository
	cache  repository.CacheRepository
}

// NewValuationService creates a ValuationService. cache may be nil.
func NewValuationService(
	tables repository.ReferenceTableRepository,
	cache repository.CacheRepository,
) *ValuationService {
	return &ValuationService{tables: tables, cache: cache}
}

// Compute validates input and returns the estimate, served from the cache
// when the same request was computed before.
func (s *ValuationService) Compute(
	ctx context.Context,
	input domain.ValuationInput,
) (domain.ValuationResult, error) {

	if err := validateInput(input); err != nil {
		return domain.ValuationResult{}, err
	}

	key := cacheKey(input)
	if result, ok := s.cached(ctx, key); ok {
		return result, nil
	}

	low, high, err := s.tables.Tables()
	if err != nil {
		return domain.ValuationResult{}, fmt.Errorf("%w: %w", ErrComputation, err)
	}

	result, err := Estimate(low, high, input)
	if err != nil {
		return domain.ValuationResult{}, err
	}

	// Cache failures never fail the valuation.
	if s.cache != nil {
		if data, err := json.Marshal(result); err != nil {
			log.Printf("Warning: failed to encode valuation for cache: %v", err)
		} else if err := s.cache.Set(ctx, key, string(data)); err != nil {
			log.Printf("Warning: failed to cache valuation %s: %v", key, err)
		}
	}

	return result, nil
}

func (s *ValuationService) cached(ctx context.Context, key string) (domain.ValuationResult, bool) {
	if s.cache == nil {
		return domain.ValuationResult{}, false
	}
	data, ok := s.cache.Get(ctx, key)
	if !ok {
		return domain.ValuationResult{}, false
	}

	var result domain.ValuationResult
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		log.Printf("Warning: discarding unreadable cache entry %s: %v", key, err)
		return domain.ValuationResult{}, false
	}
	return result, true
}

func cacheKey(input domain.ValuationInput) string {
	return strconv.FormatFloat(input.Premium, 'g', -1, 64) + "|" +
		strconv.FormatFloat(input.InterestRate, 'g', -1, 64) + "|" +
		strconv.Itoa(input.Years)
}

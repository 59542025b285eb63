package app

import (
	"context"
	crand "crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"strconv"
	"time"

	"boost_site/internal/domain"
)

const listCacheKey = "reviews:all"

// ErrUnauthorized is returned when the presented password does not match the
// configured admin secret.
var ErrUnauthorized = errors.New("reviews: unauthorized")

type ReviewService struct {
	store    domain.ReviewStore
	cache    domain.Cache
	cacheTTL time.Duration
	secret   string
}

func NewReviewService(store domain.ReviewStore, cache domain.Cache, ttl time.Duration, secret string) *ReviewService {
	return &ReviewService{store: store, cache: cache, cacheTTL: ttl, secret: secret}
}

func (s *ReviewService) List(ctx context.Context) ([]domain.Review, error) {
	var out []domain.Review
	if ok, _ := s.cache.Get(ctx, listCacheKey, &out); ok {
		return out, nil
	}
	rs, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}
	// copy before caching so callers can't mutate the cached value
	cp := make([]domain.Review, len(rs))
	copy(cp, rs)
	_ = s.cache.Set(ctx, listCacheKey, cp, int(s.cacheTTL.Seconds()))
	return rs, nil
}

// Append stamps a fresh id and the current date over whatever the caller
// sent and prepends the record. The remaining fields are stored as-is;
// presence and rating bounds are intentionally not enforced.
func (s *ReviewService) Append(ctx context.Context, in domain.Review) (domain.Review, error) {
	in.ID = newID()
	in.Date = time.Now().Format("January 2, 2006")
	if err := s.store.Insert(ctx, in); err != nil {
		return domain.Review{}, err
	}
	_ = s.cache.Del(ctx, listCacheKey)
	return in, nil
}

// Delete removes the review with the given id after checking the admin
// secret. Removing an unknown id reports zero records and no error.
func (s *ReviewService) Delete(ctx context.Context, id, password string) (int, error) {
	if subtle.ConstantTimeCompare([]byte(password), []byte(s.secret)) != 1 {
		return 0, ErrUnauthorized
	}
	n, err := s.store.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	_ = s.cache.Del(ctx, listCacheKey)
	return n, nil
}

// newID builds a timestamp-derived token with a random suffix; unique enough
// for a review id without coordinating state.
func newID() string {
	var b [4]byte
	_, _ = crand.Read(b[:])
	return strconv.FormatInt(time.Now().UnixNano(), 36) + hex.EncodeToString(b[:])
}

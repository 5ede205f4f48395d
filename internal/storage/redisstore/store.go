package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cadizz/booking/internal/ledger"
)

// occupancyKey is the fixed namespace the whole occupancy map is persisted
// under, as a single JSON blob.
const occupancyKey = "cadizz:occupancy:v1"

// Store persists the occupancy map in Redis so committed nights survive
// process restarts.
type Store struct {
	rdb *redis.Client
}

func New(addr string) *Store {
	r := redis.NewClient(&redis.Options{
		Addr:         addr,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	return &Store{rdb: r}
}

func (s *Store) Load(ctx context.Context) (ledger.Occupancy, error) {
	raw, err := s.rdb.Get(ctx, occupancyKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return make(ledger.Occupancy), nil
	}

	if err != nil {
		return nil, fmt.Errorf("get %s: %w", occupancyKey, err)
	}

	var occ ledger.Occupancy
	if err := json.Unmarshal(raw, &occ); err != nil {
		return nil, fmt.Errorf("decode %s: %w", occupancyKey, err)
	}

	return occ, nil
}

func (s *Store) Save(ctx context.Context, occ ledger.Occupancy) error {
	raw, err := json.Marshal(occ)
	if err != nil {
		return fmt.Errorf("encode %s: %w", occupancyKey, err)
	}

	if err := s.rdb.Set(ctx, occupancyKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", occupancyKey, err)
	}

	return nil
}

func (s *Store) Close() error {
	return s.rdb.Close()
}

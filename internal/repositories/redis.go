package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/spring01/music/internal/models"
	"github.com/spring01/music/internal/shared"
)

// RedisCatalogStore implements [CatalogStore] with a Redis sorted set.
//
// Music rows are members of a zero-score sorted set so ZRANGEBYLEX walks them in composite key order.
// Links live in a hash keyed by the same composite key. Rows with IsMusic = 0 keep their link but are
// left out of the index.
type RedisCatalogStore struct {
	client   *redis.Client
	indexKey string
	linksKey string
}

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(ctx context.Context, cfg shared.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}

// NewRedisCatalogStore creates a store whose keys start with prefix.
func NewRedisCatalogStore(client *redis.Client, prefix string) *RedisCatalogStore {
	return &RedisCatalogStore{
		client:   client,
		indexKey: prefix + "catalog:music",
		linksKey: prefix + "catalog:links",
	}
}

// QueryOne returns the neighbouring music row of cursor in the given direction.
func (s *RedisCatalogStore) QueryOne(ctx context.Context, cursor *string, forward bool) (*models.CatalogRow, error) {
	var (
		members []string
		err     error
	)

	if forward {
		by := &redis.ZRangeBy{Min: "-", Max: "+", Count: 1}
		if cursor != nil {
			by.Min = "(" + *cursor
		}
		members, err = s.client.ZRangeByLex(ctx, s.indexKey, by).Result()
	} else {
		by := &redis.ZRangeBy{Min: "-", Max: "+", Count: 1}
		if cursor != nil {
			by.Max = "(" + *cursor
		}
		members, err = s.client.ZRevRangeByLex(ctx, s.indexKey, by).Result()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query catalog index: %w", err)
	}

	if len(members) == 0 {
		return nil, nil
	}

	link, err := s.client.HGet(ctx, s.linksKey, members[0]).Result()
	if errors.Is(err, redis.Nil) || (err == nil && link == "") {
		return nil, missingLink(members[0])
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog link: %w", err)
	}

	return &models.CatalogRow{ArtistAlbumTitle: members[0], IsMusic: 1, Link: link}, nil
}

// Get retrieves a row by its composite key.
func (s *RedisCatalogStore) Get(ctx context.Context, key string) (*models.CatalogRow, error) {
	link, err := s.client.HGet(ctx, s.linksKey, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: catalog row %q", shared.ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog link: %w", err)
	}

	row := &models.CatalogRow{ArtistAlbumTitle: key, Link: link}
	if err := s.client.ZScore(ctx, s.indexKey, key).Err(); err == nil {
		row.IsMusic = 1
	} else if !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to read catalog index: %w", err)
	}

	return row, nil
}

// Put writes the link and adds or removes the key from the music index.
func (s *RedisCatalogStore) Put(ctx context.Context, row *models.CatalogRow) error {
	if err := row.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	pipe := s.client.TxPipeline()
	pipe.HSet(ctx, s.linksKey, row.ArtistAlbumTitle, row.Link)
	if row.IsMusic == 1 {
		pipe.ZAdd(ctx, s.indexKey, redis.Z{Score: 0, Member: row.ArtistAlbumTitle})
	} else {
		pipe.ZRem(ctx, s.indexKey, row.ArtistAlbumTitle)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to put catalog row: %w", err)
	}
	return nil
}

// List retrieves every music row in key order. An indexed key without a link fails the whole listing.
func (s *RedisCatalogStore) List(ctx context.Context) ([]models.CatalogRow, error) {
	keys, err := s.client.ZRangeByLex(ctx, s.indexKey, &redis.ZRangeBy{Min: "-", Max: "+"}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog index: %w", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}

	links, err := s.client.HMGet(ctx, s.linksKey, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog links: %w", err)
	}

	rows := make([]models.CatalogRow, 0, len(keys))
	for i, key := range keys {
		link, _ := links[i].(string)
		if link == "" {
			return nil, missingLink(key)
		}
		rows = append(rows, models.CatalogRow{ArtistAlbumTitle: key, IsMusic: 1, Link: link})
	}

	return rows, nil
}

// missingLink reports an indexed key whose link hash entry is gone.
func missingLink(key string) error {
	return fmt.Errorf("%w: catalog row %q is indexed without a link", shared.ErrNotFound, key)
}

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const pageKeyPrefix = "page:"

// Redis persists pages as JSON documents, one key per path, with no TTL.
// A SET of the whole document is atomic per key, which satisfies the
// per-key write contract without any locking.
type Redis struct {
	client *redis.Client
}

// OpenRedis connects using a redis URL (redis://host:port/db).
func OpenRedis(ctx context.Context, url string) (*Redis, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &Redis{client: client}, nil
}

func pageKey(path string) string { return pageKeyPrefix + path }

func (r *Redis) Get(ctx context.Context, path string) (*Page, error) {
	raw, err := r.client.Get(ctx, pageKey(path)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read page %s: %w", path, err)
	}
	var p Page
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("decode page %s: %w", path, err)
	}
	return &p, nil
}

func (r *Redis) Put(ctx context.Context, path, content, prompt string) error {
	now := time.Now().UTC()
	page := &Page{Path: path, Content: content, CreatedAt: now, UpdatedAt: now}
	prior, err := r.Get(ctx, path)
	if err != nil {
		return err
	}
	if prior != nil {
		page.CreatedAt = prior.CreatedAt
		page.PromptHistory = prior.PromptHistory
	}
	page.PromptHistory = append(page.PromptHistory, prompt)

	encoded, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("encode page %s: %w", path, err)
	}
	if err := r.client.Set(ctx, pageKey(path), encoded, 0).Err(); err != nil {
		return fmt.Errorf("write page %s: %w", path, err)
	}
	return nil
}

func (r *Redis) Close() error { return r.client.Close() }

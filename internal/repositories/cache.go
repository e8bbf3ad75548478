package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mentormatch/internal/models"

	"github.com/redis/go-redis/v9"
)

const walletCacheTTL = 5 * time.Minute

// WalletCache is a read-through cache for wallet rows. Mutating paths must
// invalidate the entry after their transaction commits.
type WalletCache interface {
	GetWallet(ctx context.Context, userID uint) (*models.Wallet, error)
	SetWallet(ctx context.Context, wallet *models.Wallet) error
	InvalidateWallet(ctx context.Context, userID uint) error
}

func walletCacheKey(userID uint) string {
	return fmt.Sprintf("wallet:user:%d", userID)
}

type redisWalletCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewWalletCache(client *redis.Client) WalletCache {
	return &redisWalletCache{client: client, ttl: walletCacheTTL}
}

func (c *redisWalletCache) GetWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	data, err := c.client.Get(ctx, walletCacheKey(userID)).Bytes()
	if err != nil {
		return nil, err
	}
	var wallet models.Wallet
	if err := json.Unmarshal(data, &wallet); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached wallet: %w", err)
	}
	return &wallet, nil
}

func (c *redisWalletCache) SetWallet(ctx context.Context, wallet *models.Wallet) error {
	data, err := json.Marshal(wallet)
	if err != nil {
		return fmt.Errorf("failed to marshal wallet: %w", err)
	}
	return c.client.Set(ctx, walletCacheKey(wallet.UserID), data, c.ttl).Err()
}

func (c *redisWalletCache) InvalidateWallet(ctx context.Context, userID uint) error {
	return c.client.Del(ctx, walletCacheKey(userID)).Err()
}

// NoopWalletCache satisfies WalletCache when Redis is unavailable.
type NoopWalletCache struct{}

func (NoopWalletCache) GetWallet(context.Context, uint) (*models.Wallet, error) {
	return nil, redis.Nil
}
func (NoopWalletCache) SetWallet(context.Context, *models.Wallet) error    { return nil }
func (NoopWalletCache) InvalidateWallet(context.Context, uint) error       { return nil }

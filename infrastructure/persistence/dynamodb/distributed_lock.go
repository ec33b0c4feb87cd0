package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"

	"pressroom-backend/application/ports"
)

// ErrLockHeld is returned when another owner currently holds the resource
var ErrLockHeld = errors.New("lock already held")

// DistributedLock implements ports.ResourceLock with DynamoDB conditional
// writes. It serializes article workflow transitions so two API instances
// cannot validate and commit against the same stale state.
type DistributedLock struct {
	client    *dynamodb.Client
	tableName string
	logger    *zap.Logger
}

// NewDistributedLock creates a new distributed lock instance
func NewDistributedLock(client *dynamodb.Client, tableName string, logger *zap.Logger) *DistributedLock {
	return &DistributedLock{
		client:    client,
		tableName: tableName,
		logger:    logger,
	}
}

// Acquire attempts to take the lock for the given resource
func (dl *DistributedLock) Acquire(ctx context.Context, resource, owner string, ttl time.Duration) (ports.LockHandle, error) {
	lockID := fmt.Sprintf("%s_%d", owner, time.Now().UnixNano())
	now := time.Now()
	expiresAt := now.Add(ttl)

	item := map[string]types.AttributeValue{
		"PK":         &types.AttributeValueMemberS{Value: fmt.Sprintf("LOCK#%s", resource)},
		"SK":         &types.AttributeValueMemberS{Value: "LOCK"},
		"LockID":     &types.AttributeValueMemberS{Value: lockID},
		"Owner":      &types.AttributeValueMemberS{Value: owner},
		"AcquiredAt": &types.AttributeValueMemberS{Value: now.Format(time.RFC3339)},
		"ExpiresAt":  &types.AttributeValueMemberS{Value: expiresAt.Format(time.RFC3339)},
		"TTL":        &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expiresAt.Unix())},
	}

	// Stale locks are reclaimable once expired
	input := &dynamodb.PutItemInput{
		TableName:           aws.String(dl.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(PK) OR ExpiresAt < :now"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberS{Value: now.Format(time.RFC3339)},
		},
	}

	if _, err := dl.client.PutItem(ctx, input); err != nil {
		var conditionalCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionalCheckFailed) {
			dl.logger.Debug("Failed to acquire lock - already held",
				zap.String("resource", resource),
				zap.String("owner", owner),
			)
			return nil, fmt.Errorf("%w: %s", ErrLockHeld, resource)
		}
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}

	dl.logger.Debug("Lock acquired",
		zap.String("resource", resource),
		zap.String("lockID", lockID),
		zap.Duration("ttl", ttl),
	)

	return &lockHandle{
		lock:     dl,
		resource: resource,
		lockID:   lockID,
		owner:    owner,
	}, nil
}

type lockHandle struct {
	lock     *DistributedLock
	resource string
	lockID   string
	owner    string
}

// Release deletes the lock record if this handle still owns it
func (h *lockHandle) Release(ctx context.Context) error {
	input := &dynamodb.DeleteItemInput{
		TableName: aws.String(h.lock.tableName),
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: fmt.Sprintf("LOCK#%s", h.resource)},
			"SK": &types.AttributeValueMemberS{Value: "LOCK"},
		},
		ConditionExpression: aws.String("LockID = :lockId AND #owner = :owner"),
		ExpressionAttributeNames: map[string]string{
			"#owner": "Owner",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":lockId": &types.AttributeValueMemberS{Value: h.lockID},
			":owner":  &types.AttributeValueMemberS{Value: h.owner},
		},
	}

	if _, err := h.lock.client.DeleteItem(ctx, input); err != nil {
		var conditionalCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionalCheckFailed) {
			// Expired and reclaimed by someone else; nothing to release
			h.lock.logger.Warn("Lock already released or reclaimed",
				zap.String("resource", h.resource),
				zap.String("lockID", h.lockID),
			)
			return nil
		}
		return fmt.Errorf("failed to release lock: %w", err)
	}

	return nil
}

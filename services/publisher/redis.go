package publisher

import (
	"context"
	"encoding/json"
	"hash/fnv"
	"strconv"

	"github.com/redis/go-redis/v9"

	"skillra/vacancyworker/internal/vacancy"
	scrapeerr "skillra/vacancyworker/pkg/errors"
)

// RedisPublisher implements Publisher on Redis streams. Records are
// spread over streamCount streams, sharded by vacancy id so re-crawls
// of the same vacancy always land in the same stream.
type RedisPublisher struct {
	client          *redis.Client
	ctx             context.Context
	streamPrefix    string
	streamCount     int
	streamMaxLength int
}

// NewRedisPublisher creates a publisher over streamPrefix:0 through
// streamPrefix:N-1.
func NewRedisPublisher(ctx context.Context, addr string, db int, streamPrefix string, streamCount int, streamMaxLength int) *RedisPublisher {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	if streamCount < 1 {
		streamCount = 1
	}

	return &RedisPublisher{
		client:          client,
		ctx:             ctx,
		streamPrefix:    streamPrefix,
		streamCount:     streamCount,
		streamMaxLength: streamMaxLength,
	}
}

// Publish appends the record as a JSON payload to its shard stream.
func (p *RedisPublisher) Publish(record *vacancy.Record) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return scrapeerr.NewPublisher("redis", "encode record", err)
	}

	stream := p.streamPrefix + ":" + strconv.Itoa(p.shardFor(record.VacancyID))

	err = p.client.XAdd(p.ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{
			"vacancy_id": record.VacancyID,
			"payload":    payload,
		},
	}).Err()
	if err != nil {
		return scrapeerr.NewPublisher("redis", "xadd "+stream, err)
	}
	return nil
}

func (p *RedisPublisher) shardFor(vacancyID string) int {
	if p.streamCount == 1 {
		return 0
	}
	h := fnv.New32a()
	h.Write([]byte(vacancyID))
	return int(h.Sum32() % uint32(p.streamCount))
}

// TrimStreams caps every shard stream at the configured maximum length.
func (p *RedisPublisher) TrimStreams() error {
	for i := 0; i < p.streamCount; i++ {
		stream := p.streamPrefix + ":" + strconv.Itoa(i)
		err := p.client.XTrimMaxLen(p.ctx, stream, int64(p.streamMaxLength)).Err()
		if err != nil {
			return scrapeerr.NewPublisher("redis", "xtrim "+stream, err)
		}
	}
	return nil
}

// Close closes the Redis connection
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

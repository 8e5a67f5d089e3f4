package queue

import (
	"context"
	"log"
	"time"

	"video-mcq/pkg/constants"

	"github.com/go-redis/redis/v8"
)

// Enqueuer is the producer half of the job queue; handlers only see
// this side.
type Enqueuer interface {
	Enqueue(ctx context.Context, job VideoJob) error
}

type RedisQueue struct {
	rdb *redis.Client
	key string
}

func NewRedisQueue(rdb *redis.Client) *RedisQueue {
	return &RedisQueue{rdb: rdb, key: constants.JobQueueKey}
}

func (q *RedisQueue) Enqueue(ctx context.Context, job VideoJob) error {
	serialized, err := SerializeJob(job)
	if err != nil {
		return err
	}
	return q.rdb.LPush(ctx, q.key, serialized).Err()
}

// Consume blocks on the queue and runs handle for each job, strictly
// one at a time. Within one video this keeps segment order; across
// videos it keeps the single-background-task assumption.
func (q *RedisQueue) Consume(ctx context.Context, handle func(context.Context, VideoJob)) {
	for {
		val, err := q.rdb.BRPop(ctx, 0, q.key).Result()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Println("BRPop failed:", err)
			time.Sleep(time.Second)
			continue
		}

		job, err := DeserializeJob(val[1])
		if err != nil {
			log.Println("DeserializeJob failed:", err)
			continue
		}

		handle(ctx, *job)
	}
}

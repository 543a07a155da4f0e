// Command reindex-encounters rebuilds the Redis creation-time index for stored
// encounters and reports records that no longer decode.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	encounterPattern = "encounter:*"
	indexKey         = "encounter:index:created"
)

// Only the fields the index needs
type encounterRecord struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

func main() {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Fatal("Failed to parse Redis URL:", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	fmt.Println("Connected to Redis:", redisURL)
	fmt.Println("Scanning encounter records...")

	iter := client.Scan(ctx, 0, encounterPattern, 0).Iterator()

	var corruptedKeys []string
	var entries []redis.Z

	for iter.Next(ctx) {
		key := iter.Val()
		if strings.HasPrefix(key, "encounter:index:") {
			continue
		}

		data, err := client.Get(ctx, key).Result()
		if err != nil {
			fmt.Printf("Error reading %s: %v\n", key, err)
			continue
		}

		var record encounterRecord
		if err := json.Unmarshal([]byte(data), &record); err != nil || record.ID == "" {
			fmt.Printf("✗ Undecodable record in %s\n", key)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}
		if record.ID != strings.TrimPrefix(key, "encounter:") {
			fmt.Printf("✗ %s holds encounter %s\n", key, record.ID)
			corruptedKeys = append(corruptedKeys, key)
			continue
		}

		entries = append(entries, redis.Z{
			Score:  float64(record.CreatedAt.UnixMilli()),
			Member: record.ID,
		})
	}

	if err := iter.Err(); err != nil {
		log.Fatal("Error during scan:", err)
	}

	pipe := client.TxPipeline()
	pipe.Del(ctx, indexKey)
	if len(entries) > 0 {
		pipe.ZAdd(ctx, indexKey, entries...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		log.Fatal("Failed to rebuild index:", err)
	}

	fmt.Printf("\nIndexed %d encounters, found %d bad records\n", len(entries), len(corruptedKeys))

	if len(corruptedKeys) == 0 {
		return
	}

	fmt.Println("\nBad keys:")
	for _, key := range corruptedKeys {
		fmt.Printf("  - %s\n", key)
	}

	fmt.Print("\nDo you want to DELETE these entries? (yes/no): ")
	var response string
	_, _ = fmt.Scanln(&response)

	if response != "yes" {
		fmt.Println("Aborted - no records deleted")
		return
	}

	for _, key := range corruptedKeys {
		if err := client.Del(ctx, key).Err(); err != nil {
			fmt.Printf("Failed to delete %s: %v\n", key, err)
		} else {
			fmt.Printf("Deleted %s\n", key)
		}
	}
	fmt.Println("\nCleanup complete!")
}

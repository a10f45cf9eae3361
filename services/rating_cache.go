package services

import (
	"context"
	"log"
	"strconv"

	"articlehub/global"

	"github.com/go-redis/redis"
)

const markRankKey = "rank:article:marks"

func markSumKey(articleID string) string {
	return "article:" + articleID + ":marks"
}

// cacheMark mirrors a new mark into Redis: a per-article sum counter
// and a ZSET ranking the most-rated articles. Redis is a cache here,
// the database row stays the source of truth, so failures only log.
func cacheMark(articleID uint, value int) {
	if global.RedisDB == nil {
		return
	}
	idStr := strconv.FormatUint(uint64(articleID), 10)

	pipe := global.RedisDB.TxPipeline()
	pipe.IncrBy(markSumKey(idStr), int64(value))
	pipe.ZIncrBy(markRankKey, float64(value), idStr)
	if _, err := pipe.Exec(); err != nil {
		log.Println("failed to cache mark:", err)
	}
}

// RankedArticle is one row of the top-rated listing.
type RankedArticle struct {
	ID     uint   `json:"id"`
	Header string `json:"header,omitempty"`
	Score  int64  `json:"score"`
	Rank   int    `json:"rank"`
}

// TopRated reads the top n articles from the Redis ranking and
// decorates them with headers from the database where possible.
func (s *ArticleService) TopRated(ctx context.Context, n int) ([]RankedArticle, error) {
	if global.RedisDB == nil {
		return []RankedArticle{}, nil
	}

	zres, err := global.RedisDB.ZRevRangeWithScores(markRankKey, 0, int64(n-1)).Result()
	if err == redis.Nil {
		return []RankedArticle{}, nil
	} else if err != nil {
		return nil, err
	}

	list := make([]RankedArticle, 0, len(zres))
	for idx, z := range zres {
		member, _ := z.Member.(string)
		id, err := strconv.ParseUint(member, 10, 64)
		if err != nil {
			continue
		}
		item := RankedArticle{ID: uint(id), Score: int64(z.Score), Rank: idx + 1}
		if article, err := s.store.ArticleByID(ctx, uint(id)); err == nil {
			item.Header = article.Header
		}
		list = append(list, item)
	}
	return list, nil
}

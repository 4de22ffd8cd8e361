package service

import (
	"context"
	"encoding/json"
	"time"

	"antoanmang_backend/internal/model"
	"antoanmang_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	reportCacheKey = "report:summary"
	reportCacheTTL = 60 * time.Second
)

// ReportService tổng hợp số lượng và tỉ lệ bài nộp theo mức rủi ro cho
// dashboard giáo viên. Kết quả được cache trong Redis (nếu có) và bị
// xoá mỗi khi có bài nộp mới.
type ReportService struct {
	Submissions *SubmissionService
	Redis       *redis.Client
}

func NewReportService(subs *SubmissionService, rdb *redis.Client) *ReportService {
	return &ReportService{Submissions: subs, Redis: rdb}
}

type TierCount struct {
	Level      model.RiskLevel `json:"level"`
	Label      string          `json:"label"`
	Count      int             `json:"count"`
	Percentage float64         `json:"percentage"`
}

type ReportSummary struct {
	Total int         `json:"total"`
	Tiers []TierCount `json:"tiers"`
}

func (s *ReportService) Summary(ctx context.Context) *ReportSummary {
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, reportCacheKey).Bytes(); err == nil {
			var summary ReportSummary
			if json.Unmarshal(cached, &summary) == nil {
				return &summary
			}
		}
	}

	summary := s.compute()

	if s.Redis != nil {
		if data, err := json.Marshal(summary); err == nil {
			if err := s.Redis.Set(ctx, reportCacheKey, data, reportCacheTTL).Err(); err != nil {
				logger.Log.Warn("failed to cache report summary", zap.Error(err))
			}
		}
	}

	return summary
}

func (s *ReportService) compute() *ReportSummary {
	subs := s.Submissions.FindAll()

	counts := map[model.RiskLevel]int{}
	for _, sub := range subs {
		counts[sub.RiskLevel]++
	}

	total := len(subs)
	denom := total
	if denom == 0 {
		denom = 1
	}

	tiers := make([]TierCount, 0, 3)
	for _, level := range []model.RiskLevel{model.RiskSafe, model.RiskMedium, model.RiskHigh} {
		tiers = append(tiers, TierCount{
			Level:      level,
			Label:      level.Label(),
			Count:      counts[level],
			Percentage: float64(counts[level]) / float64(denom) * 100,
		})
	}

	return &ReportSummary{Total: total, Tiers: tiers}
}

// Invalidate xoá cache báo cáo; gọi sau mỗi bài nộp mới.
func (s *ReportService) Invalidate() {
	if s.Redis == nil {
		return
	}
	if err := s.Redis.Del(context.Background(), reportCacheKey).Err(); err != nil {
		logger.Log.Warn("failed to invalidate report cache", zap.Error(err))
	}
}

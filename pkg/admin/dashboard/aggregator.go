package dashboard

import (
	"context"
	"sort"
	"time"

	"archetype-quiz-be/internal/dto"
	"archetype-quiz-be/internal/pkg/logger"
	"archetype-quiz-be/internal/repository/contract"
)

const topPodLimit = 10

// Aggregator handles dashboard statistics
type Aggregator struct {
	logger logger.ILogger
}

// NewAggregator creates a new dashboard aggregator
func NewAggregator(logger logger.ILogger) *Aggregator {
	return &Aggregator{
		logger: logger,
	}
}

// GetStats retrieves dashboard statistics
func (a *Aggregator) GetStats(ctx context.Context, resultRepo contract.QuizResultRepository, podRepo contract.PodSignupRepository) (*dto.AdminDashboardStats, error) {
	totalResults, err := resultRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	lowConfidence, err := resultRepo.CountLowConfidence(ctx)
	if err != nil {
		return nil, err
	}

	archetypes, err := resultRepo.CountByColumn(ctx, "primary_archetype")
	if err != nil {
		return nil, err
	}

	domains, err := resultRepo.CountByColumn(ctx, "domain")
	if err != nil {
		return nil, err
	}

	scales, err := resultRepo.CountByColumn(ctx, "scale")
	if err != nil {
		return nil, err
	}

	pods, err := resultRepo.CountByColumn(ctx, "pod_key")
	if err != nil {
		return nil, err
	}
	topPods := rankPods(pods, topPodLimit)

	signupCount, err := podRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	// Fetch recent results (limit 5); the dashboard survives a miss here.
	recent, err := resultRepo.FindRecent(ctx, 5)
	var recentDtos []dto.QuizResultResponse
	if err == nil {
		for _, r := range recent {
			recentDtos = append(recentDtos, dto.QuizResultResponse{
				SessionId:     r.SessionId,
				Primary:       r.Primary,
				Secondary:     r.Secondary,
				Domain:        r.Domain,
				Subdomain:     r.Subdomain,
				Scale:         r.Scale,
				PodKey:        r.PodKey,
				Confidence:    r.Confidence,
				Level:         r.Level,
				IsBlended:     r.IsBlended,
				LowConfidence: r.LowConfidence,
				CreatedAt:     r.CreatedAt,
			})
		}
	}

	return &dto.AdminDashboardStats{
		TotalResults:   totalResults,
		LowConfidence:  lowConfidence,
		Archetypes:     archetypes,
		Domains:        domains,
		Scales:         scales,
		TopPods:        topPods,
		RecentResults:  recentDtos,
		PodSignupCount: signupCount,
	}, nil
}

// rankPods orders pod counts descending, pod key ascending on ties.
func rankPods(pods map[string]int64, limit int) []dto.PodCountResponse {
	ranked := make([]dto.PodCountResponse, 0, len(pods))
	for key, count := range pods {
		ranked = append(ranked, dto.PodCountResponse{PodKey: key, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].PodKey < ranked[j].PodKey
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// GetSystemLogs retrieves system logs
func (a *Aggregator) GetSystemLogs(ctx context.Context, loggerSvc logger.ILogger, page, limit int, level string) ([]*dto.LogListResponse, error) {
	logs, err := loggerSvc.GetLogs(level, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	var res []*dto.LogListResponse
	for _, l := range logs {
		ts, _ := time.Parse(time.RFC3339, l.Timestamp)
		res = append(res, &dto.LogListResponse{
			Id:        l.Id,
			Level:     l.Level,
			Module:    l.Module,
			Message:   l.Message,
			CreatedAt: ts,
		})
	}
	return res, nil
}

// GetLogDetail retrieves a single log entry
func (a *Aggregator) GetLogDetail(ctx context.Context, loggerSvc logger.ILogger, logId string) (*dto.LogDetailResponse, error) {
	l, err := loggerSvc.GetLogById(logId)
	if err != nil {
		return nil, err
	}

	ts, _ := time.Parse(time.RFC3339, l.Timestamp)
	detailsMap := l.Details

	return &dto.LogDetailResponse{
		LogListResponse: dto.LogListResponse{
			Id:        logId,
			Level:     l.Level,
			Module:    l.Module,
			Message:   l.Message,
			CreatedAt: ts,
		},
		Details: detailsMap,
	}, nil
}

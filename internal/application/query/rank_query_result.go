package query

import "roam-backend/internal/application/common"

type RankQueryListResult struct {
	Result []*common.RankResult `json:"result"`
}

package query

import "roam-backend/internal/application/common"

type EntryQueryListResult struct {
	Result []*common.EntryResult `json:"result"`
}

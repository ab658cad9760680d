package command

import "roam-backend/internal/application/common"

// RemoveEntryCommandResult carries the entry as it was before deletion.
type RemoveEntryCommandResult struct {
	Result *common.EntryResult `json:"result"`
}

package inventory

import (
	"log"

	"github.com/OpticalFlyer/oaktree/item"
	"github.com/OpticalFlyer/oaktree/ui"
)

var _ ui.StackSyncer = (*LogSyncer)(nil)

// LogSyncer stands in for the network layer in single player: it only
// records slot updates in the log.
type LogSyncer struct {
	Logger *log.Logger
}

// SyncStack logs the new contents of a slot.
func (s *LogSyncer) SyncStack(slot, inventoryID, syncID int, stack item.Stack) {
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf("sync %d: inventory %d slot %d -> %s x%d", syncID, inventoryID, slot, stack.Item, stack.Count)
}

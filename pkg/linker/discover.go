package linker

import (
	"context"
	"time"

	"github.com/harrisonrobin/linka/pkg/notion"
)

// discoveryWindow trails the presumed hourly run cadence by 5 minutes
// of slack, so no task falls between consecutive runs without any
// persisted cursor state.
const discoveryWindow = 65 * time.Minute

// discover returns tasks edited within the discovery window that have
// a due date and no weekly link yet. The weekly-link predicate is what
// makes re-runs idempotent: an already-linked task is never selected
// again.
func (l *Linker) discover(ctx context.Context) ([]notion.Page, error) {
	cutoff := l.now().Add(-discoveryWindow)
	filter := notion.And(
		notion.DateNotEmpty(l.cfg.Props.TaskDueDate),
		notion.RelationEmpty(l.cfg.Props.TaskWeeklyLink),
		notion.EditedOnOrAfter(cutoff),
	)
	return l.client.QueryDatabase(ctx, l.cfg.TasksDB, filter)
}

// Package linker runs the batch that links recently edited tasks to
// their weekly and monthly rollup pages.
package linker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/harrisonrobin/linka/pkg/config"
	"github.com/harrisonrobin/linka/pkg/extract"
	"github.com/harrisonrobin/linka/pkg/notion"
	"github.com/harrisonrobin/linka/pkg/resolve"
)

// Store is the record-store surface the linker needs: query a database,
// patch a single page.
type Store interface {
	QueryDatabase(ctx context.Context, databaseID string, filter notion.Filter) ([]notion.Page, error)
	UpdatePage(ctx context.Context, pageID string, body []byte) error
}

// Status is a task's terminal processing state within one run.
type Status string

const (
	// StatusLinked: at least one rollup relation was written.
	StatusLinked Status = "linked"
	// StatusUnmatched: neither rollup resolved; no update was issued.
	StatusUnmatched Status = "unmatched"
	// StatusSkipped: the task's calendar fields could not be extracted.
	StatusSkipped Status = "skipped"
	// StatusFailed: the relation update call failed.
	StatusFailed Status = "update_failed"
)

// Outcome is the result of processing one task.
type Outcome struct {
	TaskID    string
	Title     string
	Status    Status
	Reason    string
	WeeklyID  string
	MonthlyID string
}

// Summary tallies one run.
type Summary struct {
	Discovered int
	Linked     int
	Unmatched  int
	Skipped    int
	Failed     int
}

// Linker sequences discovery, extraction, resolution and the relation
// write for each discovered task. Tasks are processed sequentially and
// independently; no task's failure affects another.
type Linker struct {
	client   Store
	cfg      *config.Config
	resolver *resolve.Resolver
	log      *zap.SugaredLogger
	now      func() time.Time
}

func New(client Store, cfg *config.Config, log *zap.SugaredLogger) *Linker {
	return &Linker{
		client:   client,
		cfg:      cfg,
		resolver: resolve.New(client, log),
		log:      log,
		now:      time.Now,
	}
}

// Run processes one batch to completion. Discovery failure degrades to
// an empty batch; per-task failures are recorded in the summary and
// never abort the loop.
func (l *Linker) Run(ctx context.Context) Summary {
	tasks, err := l.discover(ctx)
	if err != nil {
		l.log.Errorw("task discovery failed", "error", err)
		return Summary{}
	}

	summary := Summary{Discovered: len(tasks)}
	if len(tasks) == 0 {
		l.log.Info("no new tasks to process")
		return summary
	}
	l.log.Infow("processing tasks", "count", len(tasks))

	for _, task := range tasks {
		out := l.process(ctx, task)
		switch out.Status {
		case StatusLinked:
			summary.Linked++
		case StatusUnmatched:
			summary.Unmatched++
		case StatusSkipped:
			summary.Skipped++
		case StatusFailed:
			summary.Failed++
		}
		l.logOutcome(out)
	}
	return summary
}

func (l *Linker) process(ctx context.Context, task notion.Page) Outcome {
	props := &l.cfg.Props
	out := Outcome{TaskID: task.ID, Title: extract.Title(task, props)}

	fields, err := extract.FieldsOf(task, props)
	if err != nil {
		out.Status = StatusSkipped
		out.Reason = "missing properties"
		return out
	}

	// Weekly and monthly resolve independently; either, both, or
	// neither may succeed.
	weeklyID, err := l.resolver.Find(ctx, l.cfg.WeeklyDB,
		props.WeeklyTitle, props.WeeklyYear, fields.Week, fields.Year)
	if err != nil {
		l.log.Debugw("no weekly page",
			"task", out.Title, "week", fields.Week, "year", fields.Year)
	}
	monthlyID, err := l.resolver.Find(ctx, l.cfg.MonthlyDB,
		props.MonthlyTitle, props.MonthlyYear, fields.Month, fields.Year)
	if err != nil {
		l.log.Debugw("no monthly page",
			"task", out.Title, "month", fields.Month, "year", fields.Year)
	}

	patch, err := relationPatch(props, weeklyID, monthlyID)
	if err != nil {
		out.Status = StatusFailed
		out.Reason = err.Error()
		return out
	}
	if patch == nil {
		out.Status = StatusUnmatched
		out.Reason = "no matching rollup pages"
		return out
	}

	if err := l.client.UpdatePage(ctx, task.ID, patch); err != nil {
		out.Status = StatusFailed
		out.Reason = err.Error()
		return out
	}

	out.Status = StatusLinked
	out.WeeklyID = weeklyID
	out.MonthlyID = monthlyID
	return out
}

func (l *Linker) logOutcome(out Outcome) {
	switch out.Status {
	case StatusLinked:
		l.log.Infow("task linked",
			"task", out.Title, "id", out.TaskID,
			"weekly", out.WeeklyID, "monthly", out.MonthlyID)
	case StatusFailed:
		l.log.Errorw("task update failed",
			"task", out.Title, "id", out.TaskID, "reason", out.Reason)
	default:
		l.log.Infow("task skipped",
			"task", out.Title, "id", out.TaskID,
			"status", string(out.Status), "reason", out.Reason)
	}
}

package controller

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/locvowork/hospitality_backoffice/internal/domain"
	"github.com/locvowork/hospitality_backoffice/internal/logger"
	"github.com/locvowork/hospitality_backoffice/internal/schedule"
)

// ErrSuperseded is returned when a load was overtaken by a newer navigation
// before any week had been installed yet. The winning load is still in
// flight; callers should report the conflict rather than retry.
var ErrSuperseded = errors.New("week load superseded by a newer request")

// ScheduleController owns the visible-week state: the anchor date, the most
// recently assembled grid, and the load generation counter. All mutation
// paths go "one upstream call, then a full re-load of the week" — there is
// no incremental patching of local state.
type ScheduleController struct {
	svc    *schedule.Service
	shifts domain.ShiftStore

	mu      sync.Mutex
	anchor  time.Time
	gen     uint64
	current *schedule.WeekSchedule

	now func() time.Time
}

// New creates a controller anchored at the Monday of the current week.
func New(svc *schedule.Service, shifts domain.ShiftStore) *ScheduleController {
	c := &ScheduleController{svc: svc, shifts: shifts, now: time.Now}
	c.anchor = schedule.AlignToCurrentWeekStart(c.now())
	return c
}

// beginLoad bumps the load generation and snapshots the window to fetch.
func (c *ScheduleController) beginLoad() (uint64, schedule.WeekWindow) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	return c.gen, schedule.NewWeekWindow(c.anchor)
}

// finishLoad installs a loaded week only if its generation is still the
// latest one issued. A load superseded by a newer navigation is discarded
// so a slow response can never overwrite fresher state.
func (c *ScheduleController) finishLoad(gen uint64, ws *schedule.WeekSchedule) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return false
	}
	c.current = ws
	return true
}

// LoadWeek fetches and assembles the currently anchored week.
func (c *ScheduleController) LoadWeek(ctx context.Context) (*schedule.WeekSchedule, error) {
	gen, w := c.beginLoad()
	ws, err := c.svc.LoadWeek(ctx, w)
	if err != nil {
		return nil, err
	}
	if !c.finishLoad(gen, ws) {
		logger.DebugLog(ctx, "discarding stale week load anchored at %s (superseded by a newer request)", ws.Dates[0])
		if cur := c.Current(); cur != nil {
			return cur, nil
		}
		return nil, ErrSuperseded
	}
	return ws, nil
}

// Current returns the last successfully installed week, or nil before the
// first load.
func (c *ScheduleController) Current() *schedule.WeekSchedule {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *ScheduleController) setAnchor(anchor time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.anchor = schedule.NewWeekWindow(anchor).Anchor()
}

// LoadWeekAt re-anchors the controller and loads that week.
func (c *ScheduleController) LoadWeekAt(ctx context.Context, anchor time.Time) (*schedule.WeekSchedule, error) {
	c.setAnchor(anchor)
	return c.LoadWeek(ctx)
}

// ShiftWeek navigates by whole weeks (negative for backwards) and loads.
func (c *ScheduleController) ShiftWeek(ctx context.Context, weeks int) (*schedule.WeekSchedule, error) {
	c.mu.Lock()
	c.anchor = schedule.NewWeekWindow(c.anchor).ShiftBy(weeks).Anchor()
	c.mu.Unlock()
	return c.LoadWeek(ctx)
}

// JumpToCurrentWeek re-anchors at the Monday of the real current week.
func (c *ScheduleController) JumpToCurrentWeek(ctx context.Context) (*schedule.WeekSchedule, error) {
	return c.LoadWeekAt(ctx, schedule.AlignToCurrentWeekStart(c.now()))
}

// CreateShift fills in default times from the shift type when the caller
// left them empty, validates the range, creates the shift upstream and
// reloads the visible week.
func (c *ScheduleController) CreateShift(ctx context.Context, in *domain.CreateShift) (*schedule.WeekSchedule, error) {
	if r, ok := in.Type.DefaultRange(); ok {
		if in.StartTime == "" {
			in.StartTime = r.Start
		}
		if in.EndTime == "" {
			in.EndTime = r.End
		}
	}
	if err := in.Type.ValidateTimeRange(in.StartTime, in.EndTime); err != nil {
		return nil, err
	}

	if _, err := c.shifts.Create(ctx, in); err != nil {
		return nil, err
	}
	return c.LoadWeek(ctx)
}

// UpdateShift patches mutable shift fields (type, times, note — never the
// employee or date) and reloads the visible week. The patched range is
// validated against the shift as currently loaded, so changing one end of
// the range cannot silently invert it.
func (c *ScheduleController) UpdateShift(ctx context.Context, id int, patch *domain.ShiftPatch) (*schedule.WeekSchedule, error) {
	if patch.Type != nil || patch.StartTime != nil || patch.EndTime != nil {
		if typ, start, end, ok := c.resolvePatchedRange(id, patch); ok {
			if err := typ.ValidateTimeRange(start, end); err != nil {
				return nil, err
			}
		}
	}

	if err := c.shifts.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	return c.LoadWeek(ctx)
}

// resolvePatchedRange overlays the patch on the shift as present in the
// loaded week, yielding the type and time range the update would leave
// behind. When the shift is not visible in the current week and the patch
// alone does not pin down the full range, validation is left to the
// upstream, which checks on its side anyway.
func (c *ScheduleController) resolvePatchedRange(id int, patch *domain.ShiftPatch) (domain.ShiftType, string, string, bool) {
	var typ domain.ShiftType
	var start, end string
	if s, ok := c.findShift(id); ok {
		typ, start, end = s.Type, s.StartTime, s.EndTime
	}
	if patch.Type != nil {
		typ = *patch.Type
	}
	if patch.StartTime != nil {
		start = *patch.StartTime
	}
	if patch.EndTime != nil {
		end = *patch.EndTime
	}
	if typ == "" || start == "" || end == "" {
		return "", "", "", false
	}
	return typ, start, end, true
}

// findShift locates a shift by id in the currently installed week.
func (c *ScheduleController) findShift(id int) (domain.Shift, bool) {
	cur := c.Current()
	if cur == nil {
		return domain.Shift{}, false
	}
	for _, entry := range cur.Entries {
		for _, bucket := range entry.Shifts {
			for _, s := range bucket {
				if s.ID == id {
					return s, true
				}
			}
		}
	}
	return domain.Shift{}, false
}

// DeleteShift removes a shift upstream and reloads the visible week. The
// confirmation step lives in the UI; once the request reaches the gateway
// it is unconditional, and there is no undo.
func (c *ScheduleController) DeleteShift(ctx context.Context, id int) (*schedule.WeekSchedule, error) {
	if err := c.shifts.Delete(ctx, id); err != nil {
		return nil, err
	}
	return c.LoadWeek(ctx)
}

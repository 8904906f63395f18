// Package tabs owns the set of open tabs, their display order, and the
// active-tab pointer, and enforces the suspension/resume policy. Every
// resource-affecting decision becomes exactly one call into the engine
// capability passed to the operation.
//
// The manager has no internal locking: it expects a single logical owner,
// typically a single-threaded event loop in the surrounding application.
package tabs

import (
	"sort"

	"github.com/cometbrowser/comet/internal/shell/common/clock"
	"github.com/cometbrowser/comet/internal/shell/common/log"
	"github.com/cometbrowser/comet/internal/shell/domain"
)

// Manager owns all Tab records and applies suspension policy.
type Manager struct {
	tabs   map[domain.ViewID]*Tab
	order  []domain.ViewID
	active domain.ViewID // 0 means no active tab; real ids start at 1
	nextID uint64

	cfg    domain.SuspensionConfig
	clk    clock.Clock
	logger log.Logger
	store  SessionStore // nil disables persistence
}

// Options configures a Manager. Clock and Logger default to the real clock
// and a no-op logger; Store may be nil to disable session persistence.
type Options struct {
	Config domain.SuspensionConfig
	Clock  clock.Clock
	Logger log.Logger
	Store  SessionStore
}

// NewManager constructs an empty tab manager.
func NewManager(opts Options) *Manager {
	if opts.Clock == nil {
		opts.Clock = clock.RealClock{}
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNoopLogger()
	}
	return &Manager{
		tabs:   make(map[domain.ViewID]*Tab),
		nextID: 1,
		cfg:    opts.Config,
		clk:    opts.Clock,
		logger: opts.Logger,
		store:  opts.Store,
	}
}

// Config returns the active suspension policy.
func (m *Manager) Config() domain.SuspensionConfig { return m.cfg }

// SetConfig replaces the suspension policy. Takes effect on the next sweep.
func (m *Manager) SetConfig(cfg domain.SuspensionConfig) { m.cfg = cfg }

// Create allocates the next view identifier, asks the engine to materialize
// the view, and appends a Loading tab at the end of the display order. On
// engine failure no Tab record is created. The first tab becomes active.
func (m *Manager) Create(engine Engine) (domain.ViewID, error) {
	id := domain.ViewID(m.nextID)

	if err := engine.CreateView(id); err != nil {
		return 0, err
	}
	m.nextID++

	m.tabs[id] = newTab(id, m.clk.Now())
	m.order = append(m.order, id)

	if m.active == 0 {
		m.active = id
	}

	m.logger.Debug(map[string]any{"view": id.String()}, "tab created")
	return id, nil
}

// Close destroys the tab's view (unless it is suspended and holds no engine
// resources) and removes the record. Engine failure propagates and leaves
// the record in place. If the closed tab was active, the tab preceding it in
// display order becomes active, resumed if necessary.
func (m *Manager) Close(engine Engine, id domain.ViewID) error {
	tab, ok := m.tabs[id]
	if !ok {
		return domain.NewViewNotFound(id)
	}

	if tab.State != domain.TabSuspended {
		if err := engine.DestroyView(id); err != nil {
			return err
		}
	}

	idx := m.indexOf(id)
	delete(m.tabs, id)
	m.order = append(m.order[:idx], m.order[idx+1:]...)
	m.forgetCapture(id)

	if m.active == id {
		m.active = 0
		if next, ok := m.precedingTab(idx); ok {
			m.activate(engine, next)
		}
	}

	m.logger.Debug(map[string]any{"view": id.String()}, "tab closed")
	return nil
}

// precedingTab picks the tab that should become active after the tab that
// held display index removedIdx was removed: the one before it, or the new
// first tab, or none when the strip is empty.
func (m *Manager) precedingTab(removedIdx int) (domain.ViewID, bool) {
	if len(m.order) == 0 {
		return 0, false
	}
	if removedIdx > 0 {
		return m.order[removedIdx-1], true
	}
	return m.order[0], true
}

// activate makes id the active tab, resuming it first when suspended. A
// failed resume is logged and leaves no tab active, preserving the invariant
// that the active tab is never suspended.
func (m *Manager) activate(engine Engine, id domain.ViewID) {
	tab, ok := m.tabs[id]
	if !ok {
		return
	}
	if tab.State == domain.TabSuspended {
		if err := m.Resume(engine, id); err != nil {
			m.logger.Error(map[string]any{
				"view":  id.String(),
				"error": err.Error(),
			}, "failed to resume tab during activation")
			return
		}
	}
	tab.markActive(m.clk.Now())
	m.active = id
}

// SwitchTo backgrounds the previously active tab, resumes the target if it
// is suspended, marks it active, and updates the activity timestamp.
// Idempotent when called on the already-active tab.
func (m *Manager) SwitchTo(engine Engine, id domain.ViewID) error {
	tab, ok := m.tabs[id]
	if !ok {
		return domain.NewViewNotFound(id)
	}

	if prev, ok := m.tabs[m.active]; ok && m.active != id {
		prev.markBackground()
	}

	if tab.State == domain.TabSuspended {
		if err := m.Resume(engine, id); err != nil {
			return err
		}
	}

	tab.markActive(m.clk.Now())
	m.active = id
	return nil
}

// Suspend releases a tab's engine resources while retaining restore
// metadata. No-op when the tab is already suspended, is the active tab, or
// is pinned and policy forbids suspending pinned tabs. State flips to
// Suspended only after the engine confirms the release, so a failed release
// leaves the tab unchanged.
func (m *Manager) Suspend(engine Engine, id domain.ViewID) error {
	tab, ok := m.tabs[id]
	if !ok {
		return domain.NewViewNotFound(id)
	}

	if tab.State == domain.TabSuspended || m.active == id {
		return nil
	}
	if tab.Pinned && !m.cfg.SuspendPinned {
		return nil
	}

	// Capture first, release second. Scroll capture is an engine concern
	// not modeled here, so the position defaults to the origin.
	capture := domain.SuspendedCapture{
		URL:         tab.URL,
		Title:       tab.Title,
		SuspendedAt: m.clk.Now().Unix(),
		Favicon:     tab.Favicon,
	}

	if err := engine.SuspendView(id); err != nil {
		return err
	}

	tab.Suspended = &capture
	tab.State = domain.TabSuspended
	m.persistCapture(id, capture)

	m.logger.Info(map[string]any{
		"view":  id.String(),
		"title": tab.Title,
	}, "tab suspended")
	return nil
}

// Resume reacquires engine resources for a suspended tab and reloads its
// captured URL. A resume is a fresh navigation: no document or script state
// comes back, only metadata. No-op unless the tab is suspended.
func (m *Manager) Resume(engine Engine, id domain.ViewID) error {
	tab, ok := m.tabs[id]
	if !ok {
		return domain.NewViewNotFound(id)
	}

	if tab.State != domain.TabSuspended {
		return nil
	}

	url := tab.URL
	if tab.Suspended != nil {
		url = tab.Suspended.URL
	}

	if err := engine.ResumeView(id); err != nil {
		return err
	}
	if err := engine.LoadURL(id, url); err != nil {
		return err
	}

	tab.Suspended = nil
	tab.State = domain.TabLoading
	m.forgetCapture(id)

	m.logger.Info(map[string]any{
		"view":  id.String(),
		"title": tab.Title,
	}, "tab resumed")
	return nil
}

// CheckSuspensions is the periodic policy sweep: every background tab that
// has been inactive beyond the configured threshold (and is suspendable
// under the pinned rule) is suspended. A failure on one tab never stops the
// sweep; per-tab failures are logged.
func (m *Manager) CheckSuspensions(engine Engine) {
	if !m.cfg.Enabled {
		return
	}

	now := m.clk.Now()
	m.suspendEach(engine, m.eligible(func(t *Tab) bool {
		return t.State == domain.TabBackground && t.InactiveFor(now) > m.cfg.InactiveThreshold
	}))
}

// SuspendAllInactive suspends every non-active, non-suspended tab regardless
// of how recently it was used. Critical-pressure response.
func (m *Manager) SuspendAllInactive(engine Engine) {
	m.suspendEach(engine, m.eligible(func(t *Tab) bool {
		return t.State != domain.TabSuspended
	}))
}

// SuspendOldestInactive suspends up to n eligible background tabs, oldest
// activity first. Low-pressure response. Order among equal timestamps is
// unspecified.
func (m *Manager) SuspendOldestInactive(engine Engine, n int) {
	candidates := m.eligible(func(t *Tab) bool {
		return t.State == domain.TabBackground
	})

	sort.Slice(candidates, func(i, j int) bool {
		return m.tabs[candidates[i]].LastActive.Before(m.tabs[candidates[j]].LastActive)
	})

	if n < len(candidates) {
		candidates = candidates[:n]
	}
	m.suspendEach(engine, candidates)
}

// eligible collects tabs passing the shared eligibility rules (not active,
// pinned rule honored) plus the provided state predicate.
func (m *Manager) eligible(pred func(*Tab) bool) []domain.ViewID {
	var ids []domain.ViewID
	for id, tab := range m.tabs {
		if id == m.active {
			continue
		}
		if tab.Pinned && !m.cfg.SuspendPinned {
			continue
		}
		if pred(tab) {
			ids = append(ids, id)
		}
	}
	return ids
}

func (m *Manager) suspendEach(engine Engine, ids []domain.ViewID) {
	for _, id := range ids {
		if err := m.Suspend(engine, id); err != nil {
			m.logger.Error(map[string]any{
				"view":  id.String(),
				"error": err.Error(),
			}, "failed to suspend tab")
		}
	}
}

// ActiveTab returns the focused tab, or nil when no tab is active.
func (m *Manager) ActiveTab() *Tab {
	if m.active == 0 {
		return nil
	}
	return m.tabs[m.active]
}

// ActiveTabID returns the focused tab's identifier.
func (m *Manager) ActiveTabID() (domain.ViewID, bool) {
	if m.active == 0 {
		return 0, false
	}
	return m.active, true
}

// Get returns the tab with the given identifier.
func (m *Manager) Get(id domain.ViewID) (*Tab, bool) {
	t, ok := m.tabs[id]
	return t, ok
}

// TabsInOrder returns the tabs in display order.
func (m *Manager) TabsInOrder() []*Tab {
	out := make([]*Tab, 0, len(m.order))
	for _, id := range m.order {
		if t, ok := m.tabs[id]; ok {
			out = append(out, t)
		}
	}
	return out
}

// Count returns the number of open tabs.
func (m *Manager) Count() int { return len(m.tabs) }

// SuspendedCount returns the number of suspended tabs.
func (m *Manager) SuspendedCount() int {
	n := 0
	for _, t := range m.tabs {
		if t.State == domain.TabSuspended {
			n++
		}
	}
	return n
}

// Move repositions a tab within the display order, clamping the index to
// the valid range. Unknown ids are ignored.
func (m *Manager) Move(id domain.ViewID, index int) {
	cur := m.indexOf(id)
	if cur < 0 {
		return
	}
	m.order = append(m.order[:cur], m.order[cur+1:]...)
	if index < 0 {
		index = 0
	}
	if index > len(m.order) {
		index = len(m.order)
	}
	m.order = append(m.order[:index], append([]domain.ViewID{id}, m.order[index:]...)...)
}

// SetPinned pins or unpins a tab. Unknown ids are ignored.
func (m *Manager) SetPinned(id domain.ViewID, pinned bool) {
	if t, ok := m.tabs[id]; ok {
		t.Pinned = pinned
	}
}

// UpdateURL applies an engine-reported URL change. Idempotent.
func (m *Manager) UpdateURL(id domain.ViewID, url string) {
	if t, ok := m.tabs[id]; ok {
		t.URL = url
	}
}

// UpdateTitle applies an engine-reported title change. Idempotent.
func (m *Manager) UpdateTitle(id domain.ViewID, title string) {
	if t, ok := m.tabs[id]; ok {
		t.Title = title
	}
}

// UpdateFavicon applies an engine-reported favicon. Idempotent.
func (m *Manager) UpdateFavicon(id domain.ViewID, favicon []byte) {
	if t, ok := m.tabs[id]; ok {
		t.Favicon = favicon
	}
}

// MarkLoaded moves a Loading tab to Active or Background depending on focus.
func (m *Manager) MarkLoaded(id domain.ViewID) {
	t, ok := m.tabs[id]
	if !ok || t.State != domain.TabLoading {
		return
	}
	if m.active == id {
		t.State = domain.TabActive
	} else {
		t.State = domain.TabBackground
	}
}

func (m *Manager) indexOf(id domain.ViewID) int {
	for i, v := range m.order {
		if v == id {
			return i
		}
	}
	return -1
}

// persistCapture writes a suspended capture to the session store.
// Best-effort: failures are logged, never escalated.
func (m *Manager) persistCapture(id domain.ViewID, capture domain.SuspendedCapture) {
	if m.store == nil {
		return
	}
	if err := m.store.Put(id, capture); err != nil {
		m.logger.Warn(map[string]any{
			"view":  id.String(),
			"error": err.Error(),
		}, "failed to persist suspended tab")
	}
}

// forgetCapture drops a persisted capture. Best-effort.
func (m *Manager) forgetCapture(id domain.ViewID) {
	if m.store == nil {
		return
	}
	if err := m.store.Delete(id); err != nil {
		m.logger.Warn(map[string]any{
			"view":  id.String(),
			"error": err.Error(),
		}, "failed to remove persisted tab")
	}
}

package tabs

import "github.com/cometbrowser/comet/internal/shell/domain"

// ApplyEvent folds an engine-reported event into the matching tab record.
// Events for unknown views and kinds the manager does not track (progress,
// console output, certificate errors) are ignored; the surrounding
// application surfaces those directly.
func (m *Manager) ApplyEvent(ev domain.EngineEvent) {
	switch ev.Kind {
	case domain.EventTitleChanged:
		m.UpdateTitle(ev.ViewID, ev.Text)
	case domain.EventURLChanged:
		m.UpdateURL(ev.ViewID, ev.Text)
	case domain.EventFaviconReady:
		m.UpdateFavicon(ev.ViewID, ev.Favicon)
	case domain.EventLoadFinished:
		m.MarkLoaded(ev.ViewID)
	case domain.EventNavigationStateChanged:
		m.UpdateURL(ev.ViewID, ev.Navigation.URL)
		m.UpdateTitle(ev.ViewID, ev.Navigation.Title)
	default:
		m.logger.Debug(map[string]any{
			"view": ev.ViewID.String(),
			"kind": ev.Kind.String(),
		}, "unhandled engine event")
	}
}

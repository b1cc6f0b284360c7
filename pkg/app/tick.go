package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/art-timeline/pkg/artwork"
)

// NoticeCmd returns a Cmd that expires notice seq after d.
func NoticeCmd(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return noticeExpiredEvent{seq: seq}
	})
}

// ArtworkCmd renders the image at path off the update loop and delivers the
// result as an ArtworkLoadedEvent.
func ArtworkCmd(r *artwork.Renderer, eventID int, path string, width, height int) tea.Cmd {
	return func() tea.Msg {
		art, err := r.RenderFile(path, width, height)
		return ArtworkLoadedEvent{
			EventID:   eventID,
			Art:       art,
			Err:       err,
			Timestamp: time.Now(),
		}
	}
}

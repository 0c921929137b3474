package game

import (
	"github.com/lixenwraith/dippid-pong/behavior"
	"github.com/lixenwraith/dippid-pong/engine"
)

// EntityView is a read-only copy of one entity's renderable state
type EntityView struct {
	ID      uint64
	Name    string
	Tag     string
	X, Y    float64 // bottom-left, field units
	W, H    float64
	Color   engine.RGB
	Dashed  bool
	Visible bool
}

// PlayerView is a read-only copy of one player slot
type PlayerView struct {
	ID        int
	Score     int
	Connected bool
	Ready     bool
	Label     string
}

// Snapshot is published once per tick for renderers and spectators
// It is never written back into the simulation
type Snapshot struct {
	MatchID string
	Tick    uint64
	State   string
	Status  string
	Width   float64
	Height  float64
	Left    PlayerView
	Right   PlayerView
	// Winner is the winning player id, 0 when the match is not over
	Winner   int
	Entities []EntityView
}

// publish builds the snapshot for the current tick and updates metrics
func (m *Match) publish() {
	snap := &Snapshot{
		MatchID: m.id.String(),
		Tick:    m.ticks,
		State:   StateName(m.State()),
		Status:  m.StatusText(),
		Width:   m.cfg.Width,
		Height:  m.cfg.Height,
		Left:    playerView(m.left),
		Right:   playerView(m.right),
	}
	if m.winner != nil {
		snap.Winner = m.winner.PlayerID
	}

	entities := m.registry.Entities()
	snap.Entities = make([]EntityView, 0, len(entities))
	for _, e := range entities {
		if e.Removed() {
			continue
		}
		snap.Entities = append(snap.Entities, EntityView{
			ID:      uint64(e.ID()),
			Name:    e.Name,
			Tag:     e.Tag.String(),
			X:       e.Shape.Pos.X,
			Y:       e.Shape.Pos.Y,
			W:       e.Shape.Size.X,
			H:       e.Shape.Size.Y,
			Color:   e.Shape.Color,
			Dashed:  e.Shape.Kind == engine.ShapeDashed,
			Visible: e.Visible,
		})
	}

	m.snapshot.Store(snap)
	m.metrics.update(m, snap)
}

func playerView(p *behavior.Paddle) PlayerView {
	return PlayerView{
		ID:        p.PlayerID,
		Score:     p.Score(),
		Connected: p.IsConnected(),
		Ready:     p.IsReady(),
		Label:     ConnectionLabel(p),
	}
}

package game

import (
	"github.com/google/uuid"

	"github.com/lixenwraith/dippid-pong/engine/fsm"
)

// registerFlow binds the names used in match.toml
func registerFlow(mc *fsm.Machine[*Match]) {
	mc.RegisterGuard("any_connected", func(m *Match) bool {
		return m.left.IsConnected() || m.right.IsConnected()
	})
	mc.RegisterGuard("all_ready", func(m *Match) bool {
		return m.left.IsReady() && m.right.IsReady()
	})
	mc.RegisterGuard("goal_scored", func(m *Match) bool {
		return m.goal != nil
	})
	mc.RegisterGuard("goal_wins", func(m *Match) bool {
		return m.goal != nil && m.goal.Score() >= m.cfg.WinScore
	})
	mc.RegisterGuard("reset_elapsed", func(m *Match) bool {
		return m.resetTimer <= 0
	})

	mc.RegisterAction("start_match", (*Match).startMatch)
	mc.RegisterAction("serve", (*Match).serve)
	mc.RegisterAction("detect_goal", (*Match).detectGoal)
	mc.RegisterAction("arm_reset", (*Match).armReset)
	mc.RegisterAction("count_down", (*Match).countDown)
	mc.RegisterAction("reset_ball", (*Match).resetBall)
	mc.RegisterAction("declare_winner", (*Match).declareWinner)
	mc.RegisterAction("clear_match", (*Match).clearMatch)
}

func (m *Match) startMatch() {
	m.id = uuid.New()
	m.logger.Info("match started", "match", m.id.String(),
		"left_connected", m.left.IsConnected(), "right_connected", m.right.IsConnected())
}

// serve launches the ball toward the left paddle at base speed
func (m *Match) serve() {
	dir := m.leftEnt.Center().Sub(m.ball.Center()).Normalize()
	m.ball.Velocity = dir.Scale(m.cfg.Ball.BaseSpeed)
}

// detectGoal scores for the side opposite the ball's exit edge
func (m *Match) detectGoal() {
	if !m.ball.OutOfBoundsH {
		return
	}

	exitLeft := m.ball.Center().X < m.cfg.Width/2
	scorer := m.left
	if exitLeft {
		scorer = m.right
	}
	score := scorer.AddPoint()
	m.goal = scorer
	m.lastScore = scorer

	n := m.spawnConfetti(exitLeft, m.ball.Center())
	m.sounds.PlayScore()
	m.logger.Info("goal", "match", m.id.String(), "scorer", scorer.PlayerID, "score", score,
		"bounces", m.ballBh.Bounces(), "confetti", n)
}

func (m *Match) armReset() {
	m.resetTimer = m.cfg.ResetDelay
	m.goal = nil
}

func (m *Match) countDown() {
	m.resetTimer -= m.frame
}

func (m *Match) resetBall() {
	m.ballBh.Reset(m.fieldCenter())
	m.resetTimer = 0
}

func (m *Match) declareWinner() {
	m.winner = m.goal
	m.goal = nil
	m.resetTimer = 0
	m.logger.Info("game over", "match", m.id.String(), "winner", m.winner.PlayerID,
		"left", m.left.Score(), "right", m.right.Score())
}

// clearMatch returns to a fresh match, the connection gate runs again from INACTIVE
func (m *Match) clearMatch() {
	m.left.ResetScore()
	m.right.ResetScore()
	m.winner = nil
	m.lastScore = nil
	m.ballBh.Reset(m.fieldCenter())
}

package hover

import (
	"time"

	"go.uber.org/zap"
)

// stepStats holds per-step metrics. Only collected when debug mode is on.
type stepStats struct {
	pickStats
	changed bool
	elapsed time.Duration
}

// SetLogger sets the logger used for transition and debug output. A nil
// logger disables logging.
func (s *HoverSystem) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	s.stepMu.Lock()
	s.logger = l.Named("hover")
	s.stepMu.Unlock()
}

// SetDebugMode enables or disables per-step stats logging at debug level.
func (s *HoverSystem) SetDebugMode(enabled bool) {
	s.stepMu.Lock()
	s.debug = enabled
	s.stepMu.Unlock()
}

// debugLog writes one step's stats.
func (s *HoverSystem) debugLog(st stepStats) {
	if !s.debug {
		return
	}
	id, ok := s.Hovered()
	fields := []zap.Field{
		zap.Int("candidates", st.candidates),
		zap.Int("hits", st.hits),
		zap.Bool("changed", st.changed),
		zap.Duration("elapsed", st.elapsed),
	}
	if ok {
		fields = append(fields, zap.Uint64("hovered", uint64(id)))
	}
	s.logger.Debug("hover step", fields...)
}

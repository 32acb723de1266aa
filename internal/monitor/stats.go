package monitor

import "git.lost.host/meutraa/notebot/internal/game"

type LaneStats struct {
	Lane    game.Lane
	Presses uint64
	Holds   uint64
}

type Stats struct {
	Ticks uint64
	Lanes []LaneStats
}

func newStats(lanes []game.Lane) Stats {
	s := Stats{Lanes: make([]LaneStats, len(lanes))}
	for i, l := range lanes {
		s.Lanes[i].Lane = l
	}
	return s
}

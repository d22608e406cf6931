package metrics

import (
	"battle/game"
	"time"
)

type RoundMetric struct {
	Round  int
	Unit1  game.Kind
	Unit2  game.Kind
	Alive1 bool // army 1's unit survived the round
	Alive2 bool
}

type BattleMetric struct {
	Outcome    game.Outcome
	Rounds     int
	Remaining1 int // units left in army 1
	Remaining2 int
	Kills1     int // enemy units destroyed by army 1
	Kills2     int
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	RoundLog   []RoundMetric
}

type Collector interface {
	Start()
	AddRound(round RoundMetric)
	Complete() BattleMetric
}

type collector struct {
	startTime time.Time
	rounds    []RoundMetric
	kills1    int
	kills2    int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start() {
	m.startTime = time.Now()
	m.rounds = nil
	m.kills1, m.kills2 = 0, 0
}

func (m *collector) AddRound(round RoundMetric) {
	m.rounds = append(m.rounds, round)
	if !round.Alive2 {
		m.kills1++
	}
	if !round.Alive1 {
		m.kills2++
	}
}

func (m *collector) Complete() BattleMetric {
	end := time.Now()
	return BattleMetric{
		Rounds:    len(m.rounds),
		Kills1:    m.kills1,
		Kills2:    m.kills2,
		StartTime: m.startTime,
		EndTime:   end,
		Duration:  end.Sub(m.startTime),
		RoundLog:  m.rounds,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start()                     {}
func (m *dummyCollector) AddRound(round RoundMetric) {}
func (m *dummyCollector) Complete() BattleMetric     { return BattleMetric{} }

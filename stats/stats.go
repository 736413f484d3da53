package stats

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// GameRecord describes one finished game.
type GameRecord struct {
	ID          string    `json:"id"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Score       int       `json:"score"`
	ApplesEaten int       `json:"applesEaten"`
	Length      int       `json:"length"`
	Ticks       int       `json:"ticks"`
	Cause       string    `json:"cause"`
}

// Duration is the wall-clock length of the game.
func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// GameStats keeps the games played during this process. Nothing is written to disk.
type GameStats struct {
	games []GameRecord
	mutex sync.RWMutex
}

func NewGameStats() *GameStats {
	return &GameStats{
		games: make([]GameRecord, 0),
	}
}

// AddGame records a finished game and returns it with its ID filled in.
func (s *GameStats) AddGame(record GameRecord) GameRecord {
	if record.ID == "" {
		record.ID = uuid.New().String()
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.games = append(s.games, record)
	return record
}

// GetStats returns a copy of every recorded game, oldest first.
func (s *GameStats) GetStats() []GameRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	games := make([]GameRecord, len(s.games))
	copy(games, s.games)
	return games
}

// Last returns the most recent game.
func (s *GameStats) Last() (GameRecord, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.games) == 0 {
		return GameRecord{}, false
	}
	return s.games[len(s.games)-1], true
}

func (s *GameStats) GetGamesPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.games)
}

func (s *GameStats) GetMaxScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	maxScore := 0
	for _, game := range s.games {
		if game.Score > maxScore {
			maxScore = game.Score
		}
	}
	return maxScore
}

func (s *GameStats) GetAverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.games) == 0 {
		return 0
	}
	total := 0
	for _, game := range s.games {
		total += game.Score
	}
	return float64(total) / float64(len(s.games))
}

func (s *GameStats) GetMedianScore() float64 {
	s.mutex.RLock()
	scores := make([]int, len(s.games))
	for i, game := range s.games {
		scores[i] = game.Score
	}
	s.mutex.RUnlock()

	if len(scores) == 0 {
		return 0
	}
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

// GetAverageDuration returns the mean game duration in seconds.
func (s *GameStats) GetAverageDuration() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.games) == 0 {
		return 0
	}
	var total time.Duration
	for _, game := range s.games {
		total += game.Duration()
	}
	return total.Seconds() / float64(len(s.games))
}

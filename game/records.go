package game

import "time"

// SaveGame is offered to persistence on every playing tick with a score.
type SaveGame struct {
	Level     int       `msgpack:"level"`
	Score     int       `msgpack:"score"`
	Lives     int       `msgpack:"lives"`
	Settings  Settings  `msgpack:"settings"`
	Timestamp time.Time `msgpack:"timestamp"`
}

// ScoreEntry is offered for leaderboard insertion when a game ends.
type ScoreEntry struct {
	Name    string    `msgpack:"name"`
	Score   int       `msgpack:"score"`
	Level   int       `msgpack:"level"`
	Date    time.Time `msgpack:"date"`
	Country string    `msgpack:"country"`
}

type Profile struct {
	Name    string
	Country string
}

// Recorder receives persistence offers. Calls happen inside the tick and
// should return quickly; failures stay inside the implementation.
type Recorder interface {
	OfferSave(SaveGame)
	OfferScore(ScoreEntry)
	DiscardSave()
}

type nopRecorder struct{}

func (nopRecorder) OfferSave(SaveGame)    {}
func (nopRecorder) OfferScore(ScoreEntry) {}
func (nopRecorder) DiscardSave()          {}

func (t *tick) offerRecords() {
	w := t.w
	if w.Score <= 0 {
		return
	}
	if w.Playing {
		t.recorder.OfferSave(SaveGame{
			Level:     w.Level,
			Score:     w.Score,
			Lives:     w.Lives,
			Settings:  t.settings,
			Timestamp: t.now,
		})
		return
	}
	if w.GameOver && !t.prev.GameOver {
		t.recorder.OfferScore(ScoreEntry{
			Name:    t.profile.Name,
			Score:   w.Score,
			Level:   w.Level,
			Date:    t.now,
			Country: t.profile.Country,
		})
		t.recorder.DiscardSave()
	}
}

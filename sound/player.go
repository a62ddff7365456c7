package sound

import (
	"bytes"
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/pkg/errors"
)

const SampleRate = 48000

// tone is a beep that slides from From to To hertz and fades out. Noise
// mixes in white noise for blasts.
type tone struct {
	From, To float64
	Seconds  float64
	Volume   float64
	Noise    float64
}

var tones = [cueCount]tone{
	CueShoot:         {From: 950, To: 700, Seconds: 0.07, Volume: 0.25},
	CueBomb:          {From: 420, To: 180, Seconds: 0.18, Volume: 0.3},
	CueExplosion:     {From: 240, To: 60, Seconds: 0.25, Volume: 0.35, Noise: 0.6},
	CueMegaExplosion: {From: 160, To: 30, Seconds: 0.6, Volume: 0.45, Noise: 0.8},
	CueHurt:          {From: 300, To: 200, Seconds: 0.12, Volume: 0.35},
	CueLifeLost:      {From: 600, To: 90, Seconds: 0.5, Volume: 0.4},
	CuePowerUp:       {From: 520, To: 1250, Seconds: 0.2, Volume: 0.3},
	CueLevelUp:       {From: 660, To: 1320, Seconds: 0.35, Volume: 0.3},
	CueGameOver:      {From: 440, To: 55, Seconds: 1.2, Volume: 0.4},
}

// synthesize renders t as 16-bit little-endian stereo PCM, the format of
// an audio.Context.
func synthesize(t tone, seed uint32) []byte {
	n := int(float64(SampleRate) * t.Seconds)
	pcm := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		freq := t.From + (t.To-t.From)*p
		phase += 2 * math.Pi * freq / SampleRate
		v := math.Sin(phase) * (1 - t.Noise)
		if t.Noise > 0 {
			seed = seed*1664525 + 1013904223
			v += (float64(seed>>8)/float64(1<<24)*2 - 1) * t.Noise
		}
		s := int16(v * t.Volume * (1 - p) * 32767)
		pcm[4*i] = byte(s)
		pcm[4*i+1] = byte(s >> 8)
		pcm[4*i+2] = byte(s)
		pcm[4*i+3] = byte(s >> 8)
	}
	return pcm
}

// Player keeps one audio player per cue.
type Player struct {
	players [cueCount]*audio.Player
}

// NewPlayer synthesizes every cue. A <cue>.wav file in dir replaces the
// synthesized sound; dir may be empty.
func NewPlayer(ctx *audio.Context, dir string) *Player {
	p := &Player{}
	for c := Cue(0); c < cueCount; c++ {
		pl, err := loadWav(ctx, dir, c)
		if err != nil {
			log.Printf("sound %s: %v", c, err)
		}
		if pl == nil {
			pl = ctx.NewPlayerFromBytes(synthesize(tones[c], uint32(c)+1))
		}
		p.players[c] = pl
	}
	return p
}

func loadWav(ctx *audio.Context, dir string, c Cue) (*audio.Player, error) {
	if dir == "" {
		return nil, nil
	}
	path := filepath.Join(dir, c.String()+".wav")
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	s, err := wav.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	pl, err := ctx.NewPlayer(s)
	if err != nil {
		return nil, errors.Wrapf(err, "player %s", path)
	}
	return pl, nil
}

func (p *Player) Play(cues []Cue) {
	for _, c := range cues {
		pl := p.players[c]
		if pl == nil {
			continue
		}
		if err := pl.Rewind(); err != nil {
			log.Printf("sound %s: %v", c, err)
			continue
		}
		pl.Play()
	}
}

package game

import "time"

// Settings are fixed for a session. They are handed to the renderer
// together with every snapshot.
type Settings struct {
	ScreenWidth     float64       `msgpack:"screen_width"`
	ScreenHeight    float64       `msgpack:"screen_height"`
	ScrollSpeed     float64       `msgpack:"scroll_speed"`
	PlayerSpeed     float64       `msgpack:"player_speed"`
	BulletSpeed     float64       `msgpack:"bullet_speed"`
	RocketFrequency time.Duration `msgpack:"rocket_frequency"`
	RocketSpeed     float64       `msgpack:"rocket_speed"`
}

func DefaultSettings() Settings {
	return Settings{
		ScreenWidth:     800,
		ScreenHeight:    600,
		ScrollSpeed:     2,
		PlayerSpeed:     5,
		BulletSpeed:     10,
		RocketFrequency: 2000 * time.Millisecond,
		RocketSpeed:     3,
	}
}

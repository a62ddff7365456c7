package game

import (
	"bytes"
	"embed"
	"fmt"
	"log"

	"github.com/pkg/errors"
	"github.com/tsujio/game-util/mathutil"
	"github.com/tsujio/go-bulletml"
)

//go:embed patterns/*.xml
var patternFiles embed.FS

var (
	bossPatterns    [BossTypes]*bulletml.BulletML
	bossPatternsErr error
)

func init() {
	bossPatternsErr = loadPatterns()
	if bossPatternsErr != nil {
		log.Printf("boss patterns disabled: %v", bossPatternsErr)
	}
}

func loadPatterns() error {
	for i := range bossPatterns {
		name := fmt.Sprintf("patterns/boss%d.xml", i)
		src, err := patternFiles.ReadFile(name)
		if err != nil {
			return errors.Wrapf(err, "read %s", name)
		}
		bml, err := bulletml.Load(bytes.NewReader(src))
		if err != nil {
			return errors.Wrapf(err, "parse %s", name)
		}
		bossPatterns[i] = bml
	}
	return nil
}

// patternDriver runs the mega-boss volleys. The BulletML runners are
// stateful, so they live beside the snapshot like the spawn trackers; the
// snapshot only sees plain plasma projectiles.
type patternDriver struct {
	volley  bulletml.Runner
	bossID  string
	fired   []bulletml.BulletRunner
	bullets map[string]bulletml.BulletRunner

	shootX, shootY   float64
	targetX, targetY float64
}

func newPatternDriver() *patternDriver {
	return &patternDriver{bullets: make(map[string]bulletml.BulletRunner)}
}

func (d *patternDriver) reset() {
	d.volley = nil
	d.bossID = ""
	d.fired = nil
	d.bullets = make(map[string]bulletml.BulletRunner)
}

func (d *patternDriver) aim(shootX, shootY, targetX, targetY float64) {
	d.shootX, d.shootY = shootX, shootY
	d.targetX, d.targetY = targetX, targetY
}

// startVolley replaces the running volley with a fresh run of pattern
// bossType.
func (d *patternDriver) startVolley(bossID string, bossType int) {
	bml := bossPatterns[bossType%BossTypes]
	if bml == nil {
		return
	}
	runner, err := bulletml.NewRunner(bml, &bulletml.NewRunnerOptions{
		OnBulletFired: func(br bulletml.BulletRunner, _ *bulletml.FireContext) {
			d.fired = append(d.fired, br)
		},
		CurrentShootPosition: func() (float64, float64) {
			return d.shootX, d.shootY
		},
		CurrentTargetPosition: func() (float64, float64) {
			return d.targetX, d.targetY
		},
	})
	if err != nil {
		log.Printf("boss %s pattern %d: %v", bossID, bossType, err)
		return
	}
	d.volley = runner
	d.bossID = bossID
}

// step advances the volley and returns the bullets it fired as plasma
// projectiles.
func (d *patternDriver) step(newID func(prefix string) string) []Projectile {
	if d.volley == nil {
		return nil
	}
	if err := d.volley.Update(); err != nil {
		log.Printf("boss %s volley: %v", d.bossID, err)
		d.volley = nil
	}
	fired := d.fired
	d.fired = nil

	out := make([]Projectile, 0, len(fired))
	for _, br := range fired {
		id := newID(ProjectilePlasma.String())
		d.bullets[id] = br
		x, y := br.Position()
		out = append(out, Projectile{
			Body: Body{
				ID:     id,
				Pos:    mathutil.Vector2D{X: x - PlasmaSize/2, Y: y - PlasmaSize/2},
				W:      PlasmaSize,
				H:      PlasmaSize,
				Active: true,
			},
			Kind:   ProjectilePlasma,
			Damage: PlasmaDamage,
		})
	}
	return out
}

// advance moves a plasma projectile along its bullet runner. Projectiles
// without a runner keep their last velocity.
func (d *patternDriver) advance(p *Projectile) {
	br, ok := d.bullets[p.ID]
	if !ok {
		p.Move()
		return
	}
	if err := br.Update(); err != nil {
		log.Printf("plasma %s: %v", p.ID, err)
		delete(d.bullets, p.ID)
		p.Move()
		return
	}
	if br.Vanished() {
		p.Active = false
		return
	}
	x, y := br.Position()
	next := mathutil.Vector2D{X: x - p.W/2, Y: y - p.H/2}
	p.Vel = *next.Sub(&p.Pos)
	p.Pos = next
}

// stop ends the volley. Bullets already in flight keep flying.
func (d *patternDriver) stop() {
	d.volley = nil
	d.fired = nil
}

// forget drops bullet runners whose projectiles are gone.
func (d *patternDriver) forget(alive map[string]bool) {
	for id := range d.bullets {
		if !alive[id] {
			delete(d.bullets, id)
		}
	}
}

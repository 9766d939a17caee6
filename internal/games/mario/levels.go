package mario

import (
	"math/rand"
	"sort"

	"github.com/kojo-codeur/Mario/internal/core"
)

// Fixed sizes of level furniture in playfield units.
const (
	PlatformHeight = 20
	CoinSize       = 15
	DoorWidth      = 40
	DoorHeight     = 60
)

// Level is the freshly constructed entity set of one level.
type Level struct {
	ID        int
	Platforms []Platform
	Coins     []Coin
	Enemies   []Enemy
	Doors     []Door
}

// Empty reports whether the level has no entities at all.
func (l Level) Empty() bool {
	return len(l.Platforms) == 0 && len(l.Coins) == 0 && len(l.Enemies) == 0 && len(l.Doors) == 0
}

type platformDef struct {
	x, y, w   float64
	breakable bool
}

type enemyDef struct {
	x, y, minX, maxX float64
}

type doorDef struct {
	x, y      float64
	next      int
	threshold int
}

type levelDef struct {
	platforms []platformDef
	coins     [][2]float64
	enemies   []enemyDef
	doors     []doorDef
}

var ground = platformDef{x: 0, y: 560, w: 800}

// levelDefs holds the hand-authored campaign. Door thresholds count coins
// collected over the whole run, not per level.
var levelDefs = map[int]levelDef{
	1: {
		platforms: []platformDef{
			ground,
			{x: 200, y: 450, w: 200},
			{x: 500, y: 350, w: 150},
			{x: 300, y: 250, w: 100},
			{x: 600, y: 200, w: 200},
			{x: 100, y: 350, w: 80, breakable: true},
		},
		coins: [][2]float64{{250, 410}, {550, 310}, {330, 210}, {650, 160}, {130, 310}},
		enemies: []enemyDef{
			{x: 400, y: 430, minX: 200, maxX: 400},
			{x: 650, y: 330, minX: 500, maxX: 650},
		},
		doors: []doorDef{{x: 700, y: 140, next: 2, threshold: 3}},
	},
	2: {
		platforms: []platformDef{
			ground,
			{x: 100, y: 450, w: 100},
			{x: 300, y: 400, w: 100},
			{x: 500, y: 350, w: 100},
			{x: 200, y: 300, w: 100},
			{x: 400, y: 250, w: 100},
			{x: 600, y: 200, w: 100},
			{x: 300, y: 150, w: 100},
			{x: 500, y: 100, w: 80, breakable: true},
		},
		coins: [][2]float64{
			{130, 410}, {330, 360}, {530, 310}, {230, 260},
			{430, 210}, {630, 160}, {330, 110}, {530, 60},
		},
		enemies: []enemyDef{
			{x: 150, y: 430, minX: 100, maxX: 200},
			{x: 350, y: 380, minX: 300, maxX: 400},
			{x: 550, y: 330, minX: 500, maxX: 600},
			{x: 250, y: 280, minX: 200, maxX: 300},
			{x: 650, y: 180, minX: 600, maxX: 700},
		},
		doors: []doorDef{{x: 700, y: 90, next: 3, threshold: 5}},
	},
	3: {
		platforms: []platformDef{
			ground,
			{x: 100, y: 450, w: 80},
			{x: 250, y: 400, w: 80},
			{x: 400, y: 350, w: 80},
			{x: 550, y: 300, w: 80},
			{x: 700, y: 250, w: 80},
			{x: 550, y: 200, w: 80},
			{x: 400, y: 150, w: 80},
			{x: 250, y: 100, w: 80},
			{x: 100, y: 50, w: 80},
			{x: 400, y: 400, w: 80, breakable: true},
			{x: 550, y: 250, w: 80, breakable: true},
		},
		coins: [][2]float64{
			{130, 410}, {280, 360}, {430, 310}, {580, 260}, {730, 210}, {580, 160},
			{430, 110}, {280, 60}, {130, 10}, {430, 360}, {580, 210},
		},
		enemies: []enemyDef{
			{x: 150, y: 430, minX: 100, maxX: 180},
			{x: 300, y: 380, minX: 250, maxX: 330},
			{x: 450, y: 330, minX: 400, maxX: 480},
			{x: 600, y: 280, minX: 550, maxX: 630},
			{x: 600, y: 180, minX: 550, maxX: 630},
			{x: 450, y: 130, minX: 400, maxX: 480},
			{x: 300, y: 80, minX: 250, maxX: 330},
		},
		doors: []doorDef{{x: 700, y: 10, next: 4, threshold: 7}},
	},
	4: {
		platforms: []platformDef{
			ground,
			{x: 300, y: 400, w: 200},
			{x: 350, y: 300, w: 100},
			{x: 400, y: 200, w: 200},
		},
		doors: []doorDef{{x: 450, y: 140, next: 1, threshold: 0}},
	},
}

// LevelInfo summarizes a catalog entry without constructing it.
type LevelInfo struct {
	ID            int
	Platforms     int
	Coins         int
	Enemies       int
	CoinsRequired int
	NextLevel     int
	Final         bool
}

// LevelIDs returns the catalog ids in campaign order.
func LevelIDs() []int {
	ids := make([]int, 0, len(levelDefs))
	for id := range levelDefs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Count returns the number of levels in the campaign.
func Count() int {
	return len(levelDefs)
}

// FirstLevel returns the id the campaign starts at.
func FirstLevel() int {
	return LevelIDs()[0]
}

// FinalLevel returns the highest level id.
func FinalLevel() int {
	ids := LevelIDs()
	return ids[len(ids)-1]
}

// IsFinal reports whether id is the last level of the campaign.
func IsFinal(id int) bool {
	return id == FinalLevel()
}

// HasLevel reports whether the catalog contains id.
func HasLevel(id int) bool {
	_, ok := levelDefs[id]
	return ok
}

// Info describes a level for listings.
func Info(id int) (LevelInfo, bool) {
	def, ok := levelDefs[id]
	if !ok {
		return LevelInfo{}, false
	}
	info := LevelInfo{
		ID:        id,
		Platforms: len(def.platforms),
		Coins:     len(def.coins),
		Enemies:   len(def.enemies),
		Final:     IsFinal(id),
	}
	if len(def.doors) > 0 {
		info.CoinsRequired = def.doors[0].threshold
		info.NextLevel = def.doors[0].next
	}
	return info, true
}

// KindChooser picks the kind of each enemy at level load.
type KindChooser func() EnemyKind

// RandomKinds returns a chooser drawing uniformly from rng.
func RandomKinds(rng *rand.Rand) KindChooser {
	return func() EnemyKind {
		if rng.Intn(2) == 0 {
			return KindGoomba
		}
		return KindKoopa
	}
}

// FixedKind returns a chooser that always yields kind.
func FixedKind(kind EnemyKind) KindChooser {
	return func() EnemyKind { return kind }
}

// Catalog builds levels with the enemy parameters of a run.
type Catalog struct {
	EnemyW     float64
	EnemyH     float64
	EnemySpeed func(levelID int) float64
	ChooseKind KindChooser
}

// Load constructs fresh entity slices for id. Unknown ids yield an empty level.
func (c *Catalog) Load(id int) Level {
	level := Level{ID: id}
	def, ok := levelDefs[id]
	if !ok {
		return level
	}

	level.Platforms = make([]Platform, 0, len(def.platforms))
	for _, p := range def.platforms {
		level.Platforms = append(level.Platforms, Platform{
			Box:       core.NewBox(p.x, p.y, p.w, PlatformHeight),
			Breakable: p.breakable,
		})
	}

	level.Coins = make([]Coin, 0, len(def.coins))
	for _, pos := range def.coins {
		level.Coins = append(level.Coins, Coin{Box: core.NewBox(pos[0], pos[1], CoinSize, CoinSize)})
	}

	speed := 0.0
	if c.EnemySpeed != nil {
		speed = c.EnemySpeed(id)
	}
	level.Enemies = make([]Enemy, 0, len(def.enemies))
	for _, e := range def.enemies {
		kind := KindGoomba
		if c.ChooseKind != nil {
			kind = c.ChooseKind()
		}
		level.Enemies = append(level.Enemies, Enemy{
			Box:   core.NewBox(e.x, e.y, c.EnemyW, c.EnemyH),
			Speed: speed,
			MinX:  e.minX,
			MaxX:  e.maxX,
			Dir:   1,
			Kind:  kind,
		})
	}

	level.Doors = make([]Door, 0, len(def.doors))
	for _, d := range def.doors {
		level.Doors = append(level.Doors, Door{
			Box:           core.NewBox(d.x, d.y, DoorWidth, DoorHeight),
			NextLevel:     d.next,
			CoinsRequired: d.threshold,
		})
	}

	return level
}

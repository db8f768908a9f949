package aquarium

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/fishtank/internal/core/systems/physics"
)

// Tuning holds every constant the simulation reads. DefaultTuning reproduces
// the classic tank; a YAML file may override any subset of it.
type Tuning struct {
	World      WorldTuning        `yaml:"world"`
	Player     PlayerTuning       `yaml:"player"`
	Predator   PredatorTuning     `yaml:"predator"`
	Food       FoodTuning         `yaml:"food"`
	Bubbles    BubbleTuning       `yaml:"bubbles"`
	Plants     PlantTuning        `yaml:"plants"`
	SafeZone   SafeZoneTuning     `yaml:"safe_zone"`
	Difficulty []DifficultyPreset `yaml:"difficulty"`
	// MaxStep caps a single tick's dt in seconds.
	MaxStep float64 `yaml:"max_step"`
}

type WorldTuning struct {
	GridLength float64 `yaml:"grid_length"`
	WallMargin float64 `yaml:"wall_margin"`
	TopZ       float64 `yaml:"top_z"`
	FloorZ     float64 `yaml:"floor_z"`
	CeilingGap float64 `yaml:"ceiling_gap"`
}

type PlayerTuning struct {
	StartX        float64 `yaml:"start_x"`
	StartY        float64 `yaml:"start_y"`
	StartZ        float64 `yaml:"start_z"`
	Speed         float64 `yaml:"speed"`
	VerticalSpeed float64 `yaml:"vertical_speed"`
	Size          float64 `yaml:"size"`
	MaxHealth     int     `yaml:"max_health"`
}

type PredatorTuning struct {
	Count             int     `yaml:"count"`
	Speed             float64 `yaml:"speed"`
	Size              float64 `yaml:"size"`
	WanderSpeedFactor float64 `yaml:"wander_speed_factor"`
	WanderTimerMin    float64 `yaml:"wander_timer_min"`
	WanderTimerMax    float64 `yaml:"wander_timer_max"`
	InitialTimerMin   float64 `yaml:"initial_timer_min"`
	InitialTimerMax   float64 `yaml:"initial_timer_max"`
	WanderTurn        float64 `yaml:"wander_turn"`
	WanderBob         float64 `yaml:"wander_bob"`
	WanderBobFreq     float64 `yaml:"wander_bob_freq"`
	ChaseClimbRate    float64 `yaml:"chase_climb_rate"`
	MinSeparation     float64 `yaml:"min_separation"`
	SeparationFloor   float64 `yaml:"separation_floor"`
	SpawnRingFactor   float64 `yaml:"spawn_ring_factor"`
	SpawnRingMin      float64 `yaml:"spawn_ring_min"`
	SpawnRingMax      float64 `yaml:"spawn_ring_max"`
	SpawnZMin         float64 `yaml:"spawn_z_min"`
	SpawnZMax         float64 `yaml:"spawn_z_max"`
	Damage            int     `yaml:"damage"`
	DamageCooldown    float64 `yaml:"damage_cooldown"`
	HitSizeFactor     float64 `yaml:"hit_size_factor"`
}

type FoodTuning struct {
	Quota         int     `yaml:"quota"`
	SpawnInterval float64 `yaml:"spawn_interval"`
	Size          float64 `yaml:"size"`
	Reward        int     `yaml:"reward"`
	SpreadFactor  float64 `yaml:"spread_factor"`
	BaseZMin      float64 `yaml:"base_z_min"`
	BaseZMax      float64 `yaml:"base_z_max"`
	BobAmplitude  float64 `yaml:"bob_amplitude"`
	BobFrequency  float64 `yaml:"bob_frequency"`
}

type BubbleTuning struct {
	Cap                int     `yaml:"cap"`
	InitialAmbient     int     `yaml:"initial_ambient"`
	PerPlant           int     `yaml:"per_plant"`
	InitialBubbler     int     `yaml:"initial_bubbler"`
	AmbientSpawnChance float64 `yaml:"ambient_spawn_chance"`
	BubblerSpawnChance float64 `yaml:"bubbler_spawn_chance"`
	SpawnZ             float64 `yaml:"spawn_z"`
	RiseMin            float64 `yaml:"rise_min"`
	RiseMax            float64 `yaml:"rise_max"`
	RadiusMin          float64 `yaml:"radius_min"`
	RadiusMax          float64 `yaml:"radius_max"`
	SwayAmplitude      float64 `yaml:"sway_amplitude"`
	SwayFreqX          float64 `yaml:"sway_freq_x"`
	SwayFreqY          float64 `yaml:"sway_freq_y"`
	Margin             float64 `yaml:"margin"`
	RecycleZMin        float64 `yaml:"recycle_z_min"`
	RecycleZMax        float64 `yaml:"recycle_z_max"`
	AmbientSpread      float64 `yaml:"ambient_spread"`
	PlantJitter        float64 `yaml:"plant_jitter"`
	BubblerJitter      float64 `yaml:"bubbler_jitter"`
	BubblerInset       float64 `yaml:"bubbler_inset"`
	RenderWindow       int     `yaml:"render_window"`
}

type PlantTuning struct {
	Count         int     `yaml:"count"`
	Exclusion     float64 `yaml:"exclusion"`
	SpreadFactor  float64 `yaml:"spread_factor"`
	HeightMin     float64 `yaml:"height_min"`
	HeightMax     float64 `yaml:"height_max"`
	StalksMin     int     `yaml:"stalks_min"`
	StalksMax     int     `yaml:"stalks_max"`
	SwayAmplitude float64 `yaml:"sway_amplitude"`
	SwayFrequency float64 `yaml:"sway_frequency"`
}

type SafeZoneTuning struct {
	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
	Radius  float64 `yaml:"radius"`
	Height  float64 `yaml:"height"`
}

// DifficultyPreset gates predator chase speed and the distance at which they
// start chasing.
type DifficultyPreset struct {
	Name       string  `yaml:"name"`
	SpeedScale float64 `yaml:"speed_scale"`
	AggroRange float64 `yaml:"aggro_range"`
}

func DefaultTuning() Tuning {
	return Tuning{
		World: WorldTuning{
			GridLength: 1200,
			WallMargin: 30,
			TopZ:       420,
			FloorZ:     20,
			CeilingGap: 10,
		},
		Player: PlayerTuning{
			StartX:        0,
			StartY:        -150,
			StartZ:        80,
			Speed:         240,
			VerticalSpeed: 160,
			Size:          50,
			MaxHealth:     100,
		},
		Predator: PredatorTuning{
			Count:             14,
			Speed:             90,
			Size:              26,
			WanderSpeedFactor: 0.6,
			WanderTimerMin:    0.8,
			WanderTimerMax:    2.2,
			InitialTimerMin:   1.0,
			InitialTimerMax:   3.0,
			WanderTurn:        0.6,
			WanderBob:         18,
			WanderBobFreq:     0.7,
			ChaseClimbRate:    40,
			MinSeparation:     35,
			SeparationFloor:   1e-3,
			SpawnRingFactor:   0.45,
			SpawnRingMin:      50,
			SpawnRingMax:      200,
			SpawnZMin:         50,
			SpawnZMax:         280,
			Damage:            10,
			DamageCooldown:    0.35,
			HitSizeFactor:     0.7,
		},
		Food: FoodTuning{
			Quota:         8,
			SpawnInterval: 0.25,
			Size:          10,
			Reward:        20,
			SpreadFactor:  0.45,
			BaseZMin:      60,
			BaseZMax:      260,
			BobAmplitude:  8,
			BobFrequency:  1.3,
		},
		Bubbles: BubbleTuning{
			Cap:                260,
			InitialAmbient:     80,
			PerPlant:           4,
			InitialBubbler:     24,
			AmbientSpawnChance: 0.08,
			BubblerSpawnChance: 0.2,
			SpawnZ:             8,
			RiseMin:            24,
			RiseMax:            44,
			RadiusMin:          2,
			RadiusMax:          5,
			SwayAmplitude:      40,
			SwayFreqX:          0.02,
			SwayFreqY:          0.018,
			Margin:             8,
			RecycleZMin:        4,
			RecycleZMax:        16,
			AmbientSpread:      0.9,
			PlantJitter:        6,
			BubblerJitter:      2.5,
			BubblerInset:       80,
			RenderWindow:       220,
		},
		Plants: PlantTuning{
			Count:         10,
			Exclusion:     180,
			SpreadFactor:  0.45,
			HeightMin:     50,
			HeightMax:     110,
			StalksMin:     3,
			StalksMax:     6,
			SwayAmplitude: 8,
			SwayFrequency: 1.1,
		},
		SafeZone: SafeZoneTuning{
			CenterX: 220,
			CenterY: -180,
			Radius:  120,
			Height:  90,
		},
		Difficulty: []DifficultyPreset{
			{Name: "EASY", SpeedScale: 0.6, AggroRange: 220},
			{Name: "MEDIUM", SpeedScale: 1.0, AggroRange: 280},
			{Name: "HARD", SpeedScale: 1.6, AggroRange: 340},
		},
		MaxStep: 0.05,
	}
}

// LoadTuning decodes YAML over DefaultTuning and validates the result.
// Unknown keys are rejected.
func LoadTuning(r io.Reader) (Tuning, error) {
	t := DefaultTuning()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Tuning{}, fmt.Errorf("%w: %w", ErrInvalidTuning, err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate checks the constraints the simulation relies on.
func (t Tuning) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"world.grid_length", t.World.GridLength},
		{"world.top_z", t.World.TopZ},
		{"player.speed", t.Player.Speed},
		{"player.vertical_speed", t.Player.VerticalSpeed},
		{"player.size", t.Player.Size},
		{"predator.speed", t.Predator.Speed},
		{"predator.size", t.Predator.Size},
		{"predator.separation_floor", t.Predator.SeparationFloor},
		{"food.size", t.Food.Size},
		{"bubbles.rise_min", t.Bubbles.RiseMin},
		{"safe_zone.radius", t.SafeZone.Radius},
		{"max_step", t.MaxStep},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidTuning, p.name)
		}
	}
	if t.Player.MaxHealth <= 0 {
		return fmt.Errorf("%w: player.max_health must be positive", ErrInvalidTuning)
	}
	if t.World.GridLength/2-t.World.WallMargin <= 0 {
		return fmt.Errorf("%w: world.wall_margin leaves no room", ErrInvalidTuning)
	}
	if t.World.FloorZ >= t.World.TopZ-t.World.CeilingGap {
		return fmt.Errorf("%w: world.floor_z must sit below the ceiling", ErrInvalidTuning)
	}
	if t.Predator.Count < 0 || t.Food.Quota < 0 || t.Plants.Count < 0 {
		return fmt.Errorf("%w: counts must not be negative", ErrInvalidTuning)
	}
	if t.Predator.WanderTimerMax < t.Predator.WanderTimerMin || t.Predator.InitialTimerMax < t.Predator.InitialTimerMin {
		return fmt.Errorf("%w: predator timer ranges are inverted", ErrInvalidTuning)
	}
	if t.Bubbles.RiseMax < t.Bubbles.RiseMin || t.Bubbles.RadiusMax < t.Bubbles.RadiusMin {
		return fmt.Errorf("%w: bubble ranges are inverted", ErrInvalidTuning)
	}
	if t.Bubbles.RecycleZMax >= t.World.TopZ-t.World.CeilingGap {
		return fmt.Errorf("%w: bubbles.recycle_z_max must sit below the ceiling", ErrInvalidTuning)
	}
	if t.Plants.StalksMax < t.Plants.StalksMin || t.Plants.StalksMin <= 0 {
		return fmt.Errorf("%w: plants stalk range is invalid", ErrInvalidTuning)
	}
	if initial := t.Bubbles.InitialAmbient + t.Bubbles.PerPlant*t.Plants.Count + t.Bubbles.InitialBubbler; initial > t.Bubbles.Cap {
		return fmt.Errorf("%w: %d initial bubbles exceed cap %d", ErrInvalidTuning, initial, t.Bubbles.Cap)
	}
	if len(t.Difficulty) != int(difficultyCount) {
		return fmt.Errorf("%w: expected %d difficulty presets, got %d", ErrInvalidTuning, difficultyCount, len(t.Difficulty))
	}
	for _, d := range t.Difficulty {
		if d.SpeedScale <= 0 || d.AggroRange < 0 {
			return fmt.Errorf("%w: difficulty %q has invalid values", ErrInvalidTuning, d.Name)
		}
	}
	return nil
}

// Bounds is the box every entity is clamped into.
func (t Tuning) Bounds() physics.Bounds {
	return physics.Bounds{
		HalfExtent: t.World.GridLength/2 - t.World.WallMargin,
		MinZ:       t.World.FloorZ,
		MaxZ:       t.World.TopZ - t.World.CeilingGap,
	}
}

// BubbleField describes the looser box bubbles drift in and the height at
// which they recycle.
func (t Tuning) BubbleField() BubbleField {
	half := t.World.GridLength / 2
	return BubbleField{
		Tuning:   t.Bubbles,
		Bounds:   physics.Bounds{HalfExtent: half - t.Bubbles.Margin, MinZ: 0, MaxZ: t.World.TopZ},
		Ceiling:  t.World.TopZ - t.World.CeilingGap,
		HalfGrid: half,
	}
}

func (t Tuning) SafeDisc() physics.Disc {
	return physics.Disc{
		Center: physics.Vec2{X: t.SafeZone.CenterX, Y: t.SafeZone.CenterY},
		Radius: t.SafeZone.Radius,
		Height: t.SafeZone.Height,
	}
}

// BubblerAnchor is the pump position in the back corner of the tank.
func (t Tuning) BubblerAnchor() physics.Vec2 {
	half := t.World.GridLength / 2
	return physics.Vec2{X: half - t.Bubbles.BubblerInset, Y: -half + t.Bubbles.BubblerInset}
}

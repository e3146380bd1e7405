package core

// Screen and field dimensions in cells. The field occupies the left portion
// of the screen; columns from SidebarX onward host the control sidebar and
// are never rendered as cells, though the matrix still spans them.
const (
	ScreenWidth  = 320
	ScreenHeight = 200
	FieldWidth   = 300
	FieldHeight  = 200
	SidebarX     = 300
)

// Cell values. Densities 1..MaxWater are water; WallValue is a static,
// impermeable obstacle; DrainValue voids the cell above it each tick.
const (
	MaxWater   = 97
	WallValue  = 99
	DrainValue = 100
)

// Flow and brush tuning.
const (
	// RainProbability is the 1-in-N chance per column per tick that a
	// raindrop spawns.
	RainProbability = 100
	// WaterSpawnAmount is the density of a freshly spawned raindrop.
	WaterSpawnAmount = 5
	// EraserSize is the side length of the square eraser brush.
	EraserSize = 5
	// WaterAddRadius is the horizontal half-width of the water brush.
	WaterAddRadius = 4
	// DensityFlow is the bulk mass moved per cell in the conserving pass.
	DensityFlow = 2
)

package core

// Color is a semantic foreground colour for a screen cell. The platform
// layer maps each one to a terminal colour.
type Color uint8

const (
	ColorDefault Color = iota
	ColorDim           // Faint stars, hints
	ColorStar
	ColorSun
	ColorSunCore
	ColorRock
	ColorSeed
	ColorTrail
	ColorGrass
	ColorOcean
	ColorLake
	ColorVine
	ColorLeaf
	ColorWarning
	ColorWin
	ColorLose
	ColorHUD
)

package parameter

// HUD
const (
	HUDScoreLabel    = "Score"
	HUDLivesLabel    = "Lives"
	HUDBestLabel     = "Best"
	HUDGameOverText  = "GAME OVER - press r to restart, q to quit"
	HUDPausedText    = "PAUSED"
	HUDWindowTitle   = "Geometry Fighter"
	WindowWidth      = 640
	WindowHeight     = 960
	WindowHUDPadding = 12
)

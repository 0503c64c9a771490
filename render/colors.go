package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background

	RgbSnakeHead       = tcell.NewRGBColor(50, 255, 50)  // Bright Green
	RgbSnakeBody       = tcell.NewRGBColor(0, 170, 0)    // Normal Green
	RgbSnakeInvincible = tcell.NewRGBColor(140, 190, 255) // Bright Blue while invincible

	RgbFoodNormal = tcell.NewRGBColor(255, 80, 80)  // Normal Red
	RgbFoodGolden = tcell.NewRGBColor(255, 215, 0)  // Gold
	RgbFoodPoison = tcell.NewRGBColor(160, 60, 200) // Purple

	RgbPowerUp       = tcell.NewRGBColor(0, 200, 200)   // Vibrant Cyan
	RgbObstacle      = tcell.NewRGBColor(150, 150, 150) // Gray
	RgbObstacleLarge = tcell.NewRGBColor(101, 67, 33)   // Dark brown

	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusBg   = tcell.NewRGBColor(40, 42, 60)    // Slightly lifted background
	RgbPausedText = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbGameOver   = tcell.NewRGBColor(255, 0, 0)     // Error Red
	RgbOverlayBg  = tcell.NewRGBColor(15, 15, 25)    // Near black
)

package render

import "image/color"

var (
	Black  = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Green  = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow = color.RGBA{R: 255, G: 255, B: 50, A: 255}

	// depthGradient are the interpolation stops used to color points and
	// lines by relative depth, running near to far
	depthGradient = []color.RGBA{
		{R: 255, G: 51, B: 51, A: 255},
		{R: 255, G: 153, B: 51, A: 255},
		{R: 230, G: 230, B: 0, A: 255},
		{R: 102, G: 178, B: 255, A: 255},
		{R: 0, G: 0, B: 255, A: 255},
	}
)

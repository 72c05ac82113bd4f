package metrics

import "image"

// countContours counts the connected boundary contours of a binary edge
// map by grouping foreground pixels into 8-connected components.
//
// For clean, non-nested shapes this equals the external contour count: a
// single closed edge ring is one component. Every foreground pixel
// contributes, so even a one-pixel speck counts as a contour.
func countContours(bin *image.Gray) int {
	bounds := bin.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	visited := make([]bool, width*height)
	count := 0

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if visited[y*width+x] || bin.GrayAt(x+bounds.Min.X, y+bounds.Min.Y).Y == 0 {
				continue
			}
			count++
			floodFill(bin, visited, x, y, width, height)
		}
	}

	return count
}

// floodFill marks every foreground pixel 8-connected to (startX, startY)
// as visited. Stack-based rather than recursive so large contours cannot
// overflow the goroutine stack.
func floodFill(bin *image.Gray, visited []bool, startX, startY, width, height int) {
	min := bin.Bounds().Min
	stack := []image.Point{{X: startX, Y: startY}}

	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			continue
		}
		if visited[p.Y*width+p.X] || bin.GrayAt(p.X+min.X, p.Y+min.Y).Y == 0 {
			continue
		}
		visited[p.Y*width+p.X] = true

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				stack = append(stack, image.Point{X: p.X + dx, Y: p.Y + dy})
			}
		}
	}
}

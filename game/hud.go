package game

import "fmt"

// Hud is the text readout refreshed every frame.
type Hud struct {
	FPS     float64
	Enemies int
	Health  float64
	Text    string

	frameTimes []float64
	next       int
}

// record adds a frame time to the sliding window of the last size samples.
func (h *Hud) record(dt float64, size int) {
	if size <= 0 {
		size = 1
	}
	if len(h.frameTimes) < size {
		h.frameTimes = append(h.frameTimes, dt)
		return
	}
	h.frameTimes[h.next%len(h.frameTimes)] = dt
	h.next = (h.next + 1) % len(h.frameTimes)
}

// fps is the average frame rate over the window.
func (h *Hud) fps() float64 {
	var total float64
	for _, dt := range h.frameTimes {
		total += dt
	}
	if total <= 0 {
		return 0
	}
	return float64(len(h.frameTimes)) / total
}

// HudSystem refreshes the frame rate, enemy count and health readout.
type HudSystem struct{}

func (s *HudSystem) Execute(frame *Frame) {
	w := frame.World
	h := &w.Hud

	h.record(frame.DeltaTime, w.Config.FPSWindow)
	h.FPS = h.fps()
	h.Enemies = w.Enemies.Len()
	h.Health = w.Health.Value
	h.Text = fmt.Sprintf("Fps: %.2f\nEnemies: %d\nHealth: %g", h.FPS, h.Enemies, h.Health)
}

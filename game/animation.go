package game

// AnimationSystem ticks animation timers and cycles sprite frames within the
// four-frame band of the entity's movement state.
type AnimationSystem struct{}

func (s *AnimationSystem) Execute(frame *Frame) {
	w := frame.World
	dt := frame.DeltaTime

	if player := w.Player.Get(); player != nil {
		animate(&player.Animation, &player.Sprite, player.State, dt)
	}
	for enemy := range w.Enemies.Values() {
		animate(&enemy.Animation, &enemy.Sprite, enemy.State, dt)
	}
}

func animate(anim *Animation, sprite *Sprite, state MovementState, dt float64) {
	anim.Timer.Tick(dt)
	for range anim.Timer.TimesFinishedThisTick() {
		sprite.Index = nextFrame(sprite.Index, state)
	}
}

// nextFrame advances index within [base, base+3] for state.
func nextFrame(index int, state MovementState) int {
	return state.FrameBase() + (index+1)%4
}

// SpriteFlipSystem mirrors sprites so the player and gun face the cursor and
// enemies face the player.
type SpriteFlipSystem struct{}

func (s *SpriteFlipSystem) Execute(frame *Frame) {
	w := frame.World

	if cursor := w.Cursor.Get(); cursor != nil {
		if player := w.Player.Get(); player != nil {
			player.Sprite.FlipX = cursor.X() <= player.Transform.Pos.X()
		}
		if gun := w.Gun.Get(); gun != nil {
			gun.Sprite.FlipX = cursor.X() <= gun.Transform.Pos.X()
		}
	}

	player := w.Player.Get()
	if player == nil {
		return
	}
	px := player.Transform.Pos.X()
	for enemy := range w.Enemies.Values() {
		enemy.Sprite.FlipX = enemy.Transform.Pos.X() >= px
	}
}

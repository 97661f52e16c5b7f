package ecs

type UpdateFrame[W World] struct {
	DeltaTime float64
	Commands  *Commands[W]
	World     W
}

func newUpdateFrame[W World](dt float64, world W) *UpdateFrame[W] {
	return &UpdateFrame[W]{
		DeltaTime: dt,
		Commands:  newCommands[W](),
		World:     world,
	}
}

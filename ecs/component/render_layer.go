package component

// Paddles sit on the bottom layer and the ball is drawn over them.
const (
	LayerPaddle = 0
	LayerBall   = 1
)

// RenderLayer orders sprites within a frame; lower indices draw first and
// entities without one draw on LayerPaddle.
type RenderLayer struct {
	Index int
}

var RenderLayerComponent = NewComponent[RenderLayer]()

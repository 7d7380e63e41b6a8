package component

type PaddleTag struct{}

var PaddleTagComponent = NewComponent[PaddleTag]()

type BallTag struct{}

var BallTagComponent = NewComponent[BallTag]()

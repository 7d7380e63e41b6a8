package component

// SoundPlayer is the subset of *audio.Player the audio system drives.
type SoundPlayer interface {
	Rewind() error
	Play()
	SetVolume(volume float64)
}

// Sound is a one-shot effect played when its entity bounces.
type Sound struct {
	Name   string
	Player SoundPlayer
	Volume float64
}

var SoundComponent = NewComponent[Sound]()

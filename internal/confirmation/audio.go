package confirmation

import "sync"

// Player is the underlying audio element. Play may fail when the
// platform refuses autoplay; that is logged by callers, not fatal.
type Player interface {
	Play() error
	Pause()
}

// AudioPlayer gates playback behind an explicit visitor gesture and
// tracks playing state from the player's own callbacks, so the state
// can't drift from what is actually audible.
type AudioPlayer struct {
	mu         sync.Mutex
	player     Player
	interacted bool
	playing    bool
}

func NewAudioPlayer(p Player) *AudioPlayer {
	return &AudioPlayer{player: p}
}

// Start handles the first gesture. It marks the player interacted even
// if playback fails, so the UI switches to the toggle control.
func (a *AudioPlayer) Start() error {
	a.mu.Lock()
	a.interacted = true
	p := a.player
	a.mu.Unlock()

	if p == nil {
		return nil
	}
	return p.Play()
}

// Toggle pauses when playing and plays when paused. Before the first
// Start it does nothing.
func (a *AudioPlayer) Toggle() error {
	a.mu.Lock()
	if !a.interacted || a.player == nil {
		a.mu.Unlock()
		return nil
	}
	playing := a.playing
	p := a.player
	a.mu.Unlock()

	if playing {
		p.Pause()
		return nil
	}
	return p.Play()
}

// OnPlay, OnPause and OnEnded are wired to the player's callbacks.
func (a *AudioPlayer) OnPlay() { a.setPlaying(true) }

func (a *AudioPlayer) OnPause() { a.setPlaying(false) }

func (a *AudioPlayer) OnEnded() { a.setPlaying(false) }

func (a *AudioPlayer) setPlaying(v bool) {
	a.mu.Lock()
	a.playing = v
	a.mu.Unlock()
}

// Playing reports whether audio is currently audible.
func (a *AudioPlayer) Playing() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.playing
}

// Interacted reports whether the visitor has made the first gesture.
func (a *AudioPlayer) Interacted() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.interacted
}

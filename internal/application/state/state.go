// Package state holds the two state machines of the gameplay scene: the
// top-level scene state and the round-level gameplay state nested inside
// SceneRunning.
package state

// SceneState is the top-level state of the gameplay scene
type SceneState int

const (
	SceneLoading SceneState = iota
	SceneRunning
	ScenePaused
	SceneError
)

// AllSceneStates lists every scene state, in declaration order
func AllSceneStates() []SceneState {
	return []SceneState{SceneLoading, SceneRunning, ScenePaused, SceneError}
}

// String returns the string representation of the scene state
func (s SceneState) String() string {
	switch s {
	case SceneLoading:
		return "Loading"
	case SceneRunning:
		return "Running"
	case ScenePaused:
		return "Paused"
	case SceneError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no transition leaves the state
func (s SceneState) Terminal() bool {
	return s == SceneError
}

// Gameplay is the state of the current round
type Gameplay int

const (
	GameplayUninitialized Gameplay = iota
	GameplayWaitingToStart
	GameplayPlaying
	GameplayGameOver
)

// AllGameplayStates lists every gameplay state, in declaration order
func AllGameplayStates() []Gameplay {
	return []Gameplay{GameplayUninitialized, GameplayWaitingToStart, GameplayPlaying, GameplayGameOver}
}

// String returns the string representation of the gameplay state
func (g Gameplay) String() string {
	switch g {
	case GameplayUninitialized:
		return "Uninitialized"
	case GameplayWaitingToStart:
		return "WaitingToStart"
	case GameplayPlaying:
		return "Playing"
	case GameplayGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

package component

import "github.com/milk9111/tween"

// Target names the transform property a run writes to.
type Target uint8

const (
	TargetPosition Target = iota
	TargetLocalPosition
	TargetRotation
	TargetLocalRotation
	TargetScale
)

func (t Target) String() string {
	switch t {
	case TargetPosition:
		return "position"
	case TargetLocalPosition:
		return "local-position"
	case TargetRotation:
		return "rotation"
	case TargetLocalRotation:
		return "local-rotation"
	case TargetScale:
		return "scale"
	}
	return "unknown"
}

// PropertyRun pairs an in-flight run with the property it drives.
type PropertyRun struct {
	Target Target
	Run    *tween.Run
}

// Tween holds the active property runs for one entity. The tween system
// steps them each frame and drops the component when the list empties.
type Tween struct {
	Runs []PropertyRun
}

var TweenComponent = NewComponent[Tween]()

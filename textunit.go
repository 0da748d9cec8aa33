package messages

// UnitShape identifies what kind of rendition a text unit side holds.
type UnitShape string

const (
	// ShapeMessage marks a single-message side.
	ShapeMessage UnitShape = "message"
	// ShapeGroup marks a variant-group side.
	ShapeGroup UnitShape = "group"
)

// UnitSide is either a Message or a *Group, the two shapes a text unit can
// pair. The interface is closed over this package.
type UnitSide interface {
	unitShape() UnitShape
}

var (
	_ UnitSide = Message{}
	_ UnitSide = (*Group)(nil)
)

func (Message) unitShape() UnitShape { return ShapeMessage }

func (*Group) unitShape() UnitShape { return ShapeGroup }

// TextUnit pairs a source-locale rendition with its target-locale rendition,
// the unit translation workflows hand around. Both sides always share one
// shape: a message translates to a message, a group to a group.
type TextUnit struct {
	source UnitSide
	target UnitSide
}

// NewTextUnit pairs source and target. Mixing shapes, or leaving either side
// nil, fails with ShapeMismatchError. Group sides are cloned so the unit owns
// its variants exclusively and later edits to the originals never leak in.
func NewTextUnit(source, target UnitSide) (TextUnit, error) {
	srcShape := sideShape(source)
	tgtShape := sideShape(target)
	if srcShape == "" || tgtShape == "" || srcShape != tgtShape {
		return TextUnit{}, &ShapeMismatchError{Source: srcShape, Target: tgtShape}
	}
	return TextUnit{source: ownSide(source), target: ownSide(target)}, nil
}

func sideShape(side UnitSide) UnitShape {
	switch v := side.(type) {
	case Message:
		return ShapeMessage
	case *Group:
		if v == nil {
			return ""
		}
		return ShapeGroup
	default:
		return ""
	}
}

func ownSide(side UnitSide) UnitSide {
	if g, ok := side.(*Group); ok {
		return g.Clone()
	}
	return side
}

// Source returns the source-locale side.
func (u TextUnit) Source() UnitSide { return u.source }

// Target returns the target-locale side.
func (u TextUnit) Target() UnitSide { return u.target }

// Shape reports the shared shape of both sides, empty for the zero unit.
func (u TextUnit) Shape() UnitShape { return sideShape(u.source) }

// SourceMessage returns the source side of a message-shaped unit.
func (u TextUnit) SourceMessage() (Message, bool) {
	msg, ok := u.source.(Message)
	return msg, ok
}

// TargetMessage returns the target side of a message-shaped unit.
func (u TextUnit) TargetMessage() (Message, bool) {
	msg, ok := u.target.(Message)
	return msg, ok
}

// SourceGroup returns the source side of a group-shaped unit.
func (u TextUnit) SourceGroup() (*Group, bool) {
	g, ok := u.source.(*Group)
	return g, ok
}

// TargetGroup returns the target side of a group-shaped unit.
func (u TextUnit) TargetGroup() (*Group, bool) {
	g, ok := u.target.(*Group)
	return g, ok
}

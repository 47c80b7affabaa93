package query

// PathPattern is a regular expression over graph edges, matched by a [Path]
// query.
type PathPattern interface{ pathPattern() }

type (
	// PathPredicate follows an edge labelled Predicate forwards.
	PathPredicate struct {
		Predicate string
	}
	// InversePathPredicate follows an edge labelled Predicate backwards.
	InversePathPredicate struct {
		Predicate string
	}
	PathSequence struct {
		Sequence []PathPattern
	}
	PathOr struct {
		Or []PathPattern
	}
	// PathStar matches zero or more repetitions.
	PathStar struct {
		Star PathPattern
	}
	// PathPlus matches one or more repetitions.
	PathPlus struct {
		Plus PathPattern
	}
	// PathTimes matches between From and To repetitions. From <= To is left
	// to the server to enforce.
	PathTimes struct {
		Times    PathPattern
		From, To uint64
	}
)

func (PathPredicate) pathPattern()        {}
func (InversePathPredicate) pathPattern() {}
func (PathSequence) pathPattern()         {}
func (PathOr) pathPattern()               {}
func (PathStar) pathPattern()             {}
func (PathPlus) pathPattern()             {}
func (PathTimes) pathPattern()            {}

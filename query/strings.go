package query

type (
	Trim struct {
		Untrimmed, Trimmed DataValue
	}
	Upper struct {
		Mixed, Upper DataValue
	}
	Lower struct {
		Mixed, Lower DataValue
	}
	// Pad left-pads String with Char repeated Times times.
	Pad struct {
		String, Char, Times, Result DataValue
	}
	Split struct {
		String, Pattern, List DataValue
	}
	Join struct {
		List, Separator, Result DataValue
	}
	Concatenate struct {
		List, Result DataValue
	}
	Substring struct {
		String, Before, Length, After, Substring DataValue
	}
	// Regexp matches String against Pattern. Result, if set, is bound to the
	// list of capture groups.
	Regexp struct {
		Pattern, String DataValue
		Result          DataValue
	}
	// Like binds Similarity to a score in [-1, 1].
	Like struct {
		Left, Right, Similarity DataValue
	}
)

func (Trim) isQuery()        {}
func (Upper) isQuery()       {}
func (Lower) isQuery()       {}
func (Pad) isQuery()         {}
func (Split) isQuery()       {}
func (Join) isQuery()        {}
func (Concatenate) isQuery() {}
func (Substring) isQuery()   {}
func (Regexp) isQuery()      {}
func (Like) isQuery()        {}

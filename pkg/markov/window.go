package markov

// Window is the rolling context of a character model: the last W runes seen.
// Its string form is the lookup key in a Model.
type Window []rune

// NewWindow returns a window holding the last n runes of text, or false if the
// text is shorter than n runes.
func NewWindow(text string, n int) (Window, bool) {
	runes := []rune(text)
	if n < 1 || len(runes) < n {
		return nil, false
	}
	w := make(Window, n)
	copy(w, runes[len(runes)-n:])
	return w, true
}

// Shift drops the first rune of the window and appends c.
func (w Window) Shift(c rune) {
	copy(w, w[1:])
	w[len(w)-1] = c
}

// String returns the window as a string (for use as a map key).
func (w Window) String() string {
	return string(w)
}

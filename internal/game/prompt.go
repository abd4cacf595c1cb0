package game

import "unicode"

// InvalidInputMessage is shown when a reconfiguration request is rejected.
const InvalidInputMessage = "Invalid input. Please enter valid numbers."

// maxFieldLen bounds the text a single prompt field accepts.
const maxFieldLen = 6

// Prompt collects one or more labelled text answers in sequence.
type Prompt struct {
	labels  []string
	answers []string
	buf     []rune
	apply   func(answers []string) error
}

// NewPrompt asks each label in turn and hands the answers to apply once the
// last one is submitted.
func NewPrompt(apply func(answers []string) error, labels ...string) *Prompt {
	return &Prompt{labels: labels, apply: apply}
}

// Active reports whether the prompt still awaits input.
func (p *Prompt) Active() bool {
	return p != nil && len(p.answers) < len(p.labels)
}

// Label returns the question currently being asked.
func (p *Prompt) Label() string {
	if !p.Active() {
		return ""
	}
	return p.labels[len(p.answers)]
}

// Input returns the text typed so far for the current question.
func (p *Prompt) Input() string {
	if p == nil {
		return ""
	}
	return string(p.buf)
}

// Type appends printable runes to the current answer.
func (p *Prompt) Type(runes ...rune) {
	if !p.Active() {
		return
	}
	for _, r := range runes {
		if !unicode.IsPrint(r) || len(p.buf) >= maxFieldLen {
			continue
		}
		p.buf = append(p.buf, r)
	}
}

// Backspace removes the last typed rune.
func (p *Prompt) Backspace() {
	if p.Active() && len(p.buf) > 0 {
		p.buf = p.buf[:len(p.buf)-1]
	}
}

// Submit records the current answer. Once every label is answered the apply
// callback runs and its error is returned with done set.
func (p *Prompt) Submit() (done bool, err error) {
	if !p.Active() {
		return false, nil
	}
	p.answers = append(p.answers, string(p.buf))
	p.buf = p.buf[:0]
	if p.Active() {
		return false, nil
	}
	if p.apply == nil {
		return true, nil
	}
	return true, p.apply(p.answers)
}

// Notice is a message that disappears after a number of ticks.
type Notice struct {
	text string
	ttl  int
}

// Show replaces the notice text and keeps it visible for ticks frames.
func (n *Notice) Show(text string, ticks int) {
	n.text = text
	n.ttl = ticks
}

// Tick advances the notice by one frame.
func (n *Notice) Tick() {
	if n.ttl > 0 {
		n.ttl--
		if n.ttl == 0 {
			n.text = ""
		}
	}
}

// Text returns the visible message, or "" once expired.
func (n *Notice) Text() string { return n.text }

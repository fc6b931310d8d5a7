package menu

import (
	"strconv"
	"strings"
)

// Presenter decorates labels before they are handed to the selector and
// recovers the label from what the selector returns.
type Presenter interface {
	Present(labels []string) []string
	Recover(choice string) string
}

// NewPresenter returns a Numbered presenter when numbered is set, Plain otherwise.
func NewPresenter(numbered bool, separator string) Presenter {
	if numbered {
		return &Numbered{Separator: separator}
	}
	return Plain{}
}

// Plain shows labels unchanged.
type Plain struct{}

func (Plain) Present(labels []string) []string {
	return append([]string(nil), labels...)
}

func (Plain) Recover(choice string) string {
	return choice
}

// Numbered prefixes every label with its 1-based position and Separator.
type Numbered struct {
	Separator string

	labels []string
}

func (n *Numbered) Present(labels []string) []string {
	n.labels = append(n.labels[:0], labels...)

	out := make([]string, len(labels))
	for i, label := range labels {
		out[i] = strconv.Itoa(i+1) + n.Separator + label
	}
	return out
}

// Recover strips the position prefix when it points at the matching label.
// Anything else, such as typed text, is returned untouched.
func (n *Numbered) Recover(choice string) string {
	digits := 0
	for digits < len(choice) && choice[digits] >= '0' && choice[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return choice
	}

	pos, err := strconv.Atoi(choice[:digits])
	if err != nil || pos < 1 || pos > len(n.labels) {
		return choice
	}

	rest, ok := strings.CutPrefix(choice[digits:], n.Separator)
	if !ok || rest != n.labels[pos-1] {
		return choice
	}
	return rest
}

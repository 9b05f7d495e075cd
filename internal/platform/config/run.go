package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// NoMask is the mask token that disables mask loading.
const NoMask = "none"

// ArgCount is the number of positional arguments ParseArgs expects.
const ArgCount = 5

// ErrInvalid marks every configuration error: bad argument count, an
// unparseable viewer flag, an empty mask token, or an out-of-range option.
var ErrInvalid = errors.New("invalid configuration")

// Run is the immutable configuration of a single playback run. It is built
// once from the command line and passed by value.
type Run struct {
	VocabularyPath string
	SettingsPath   string
	SequenceDir    string
	UseViewer      bool
	MaskToken      string
}

// ParseArgs builds a Run from the five positional arguments
// vocabulary, settings, sequence directory, viewer flag and mask token.
func ParseArgs(args []string) (Run, error) {
	if len(args) != ArgCount {
		return Run{}, fmt.Errorf("%w: expected %d arguments, got %d", ErrInvalid, ArgCount, len(args))
	}

	viewer, err := parseViewerFlag(args[3])
	if err != nil {
		return Run{}, err
	}

	token := strings.TrimSpace(args[4])
	if token == "" {
		return Run{}, fmt.Errorf("%w: mask token must be %q or a folder name", ErrInvalid, NoMask)
	}

	return Run{
		VocabularyPath: args[0],
		SettingsPath:   args[1],
		SequenceDir:    args[2],
		UseViewer:      viewer,
		MaskToken:      token,
	}, nil
}

// MasksEnabled reports whether frames should be paired with masks.
func (r Run) MasksEnabled() bool {
	return r.MaskToken != NoMask
}

// parseViewerFlag accepts an integer (non-zero enables the viewer) or a
// boolean literal.
func parseViewerFlag(s string) (bool, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n != 0, nil
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b, nil
	}
	return false, fmt.Errorf("%w: viewer flag %q is neither an integer nor a boolean", ErrInvalid, s)
}

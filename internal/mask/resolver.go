// Package mask derives the companion mask path of a frame. Masks live in a
// folder next to the frames and share the frame's base name with a .png
// extension:
//
//	/data/seq/0001.jpg + "masks" -> /data/seq/masks/0001.png
package mask

import "strings"

// NoneToken disables masks.
const NoneToken = "none"

// Reference points at a mask image, or is None.
type Reference struct {
	Path string
}

// None is the reference of a frame without a mask.
var None = Reference{}

// IsNone reports whether r refers to no mask.
func (r Reference) IsNone() bool {
	return r.Path == ""
}

// String implements fmt.Stringer.
func (r Reference) String() string {
	if r.IsNone() {
		return NoneToken
	}
	return r.Path
}

// Resolve returns the mask reference for imagePath under the folder token.
// It is a pure string transformation and does not check that the mask exists.
func Resolve(imagePath, token string) Reference {
	if token == NoneToken || token == "" {
		return None
	}

	parts := strings.Split(imagePath, "/")
	for len(parts) > 0 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	if len(parts) == 0 {
		return None
	}

	var b strings.Builder
	for _, dir := range parts[:len(parts)-1] {
		b.WriteString(dir)
		b.WriteByte('/')
	}

	base, _, _ := strings.Cut(parts[len(parts)-1], ".")
	b.WriteString(token)
	b.WriteByte('/')
	b.WriteString(base)
	b.WriteString(".png")

	return Reference{Path: b.String()}
}

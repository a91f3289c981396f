package mapfile

import (
	"bytes"
	_ "embed"
)

//go:embed reference.yaml
var referenceYAML []byte

// Reference returns the bundled 10×10 demonstration map with start (3, 5)
// and goal (7, 2).
func Reference() *Map {
	m, err := Decode(bytes.NewReader(referenceYAML), FormatYAML)
	if err != nil {
		panic("mapfile: bundled reference map: " + err.Error())
	}

	return m
}

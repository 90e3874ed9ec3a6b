//go:build !windows

package screen

var clearCommand = []string{"clear"}

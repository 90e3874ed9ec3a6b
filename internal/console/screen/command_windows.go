//go:build windows

package screen

var clearCommand = []string{"cmd", "/c", "cls"}

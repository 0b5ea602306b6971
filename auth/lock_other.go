//go:build !linux && !darwin

package auth

import (
	"os"
)

func lock(f *os.File, exclusive bool) (func(), error) {
	return func() {}, nil
}

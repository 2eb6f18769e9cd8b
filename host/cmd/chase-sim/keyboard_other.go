//go:build !unix

package main

import (
	"errors"

	"chaser/sim"
)

type keyboard struct{}

func startKeyboard(*sim.Board, func()) (*keyboard, error) {
	return nil, errors.New("raw keyboard input needs a unix terminal")
}

func (*keyboard) Stop() {}

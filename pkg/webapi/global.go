package webapi

import (
	"errors"
	"sync/atomic"
)

var global atomic.Pointer[Client]

// Install makes c the process-wide client returned by Global.
//
// Only one client can ever be installed; later calls return
// ErrAlreadyInstalled and leave the first client in place.
func Install(c *Client) error {
	if c == nil {
		return errors.New("webapi: cannot install a nil client")
	}
	if !global.CompareAndSwap(nil, c) {
		return ErrAlreadyInstalled
	}
	return nil
}

// MustInstall is like Install but panics if a client is already installed.
func MustInstall(c *Client) {
	if err := Install(c); err != nil {
		panic(err)
	}
}

// Global returns the installed client.
func Global() (*Client, error) {
	c := global.Load()
	if c == nil {
		return nil, ErrNotInstalled
	}
	return c, nil
}

package client

import (
	"errors"

	"github.com/dmitrijs2005/blindledger/internal/common"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = common.ErrUnauthorized
	ErrNotLoggedIn  = errors.New("not logged in")
)

package store

import (
	"github.com/skillswaphq/skillswap-backend/internal/store/swaprequest"
	"github.com/skillswaphq/skillswap-backend/internal/store/user"
)

type Store struct {
	User        user.IStore
	SwapRequest swaprequest.IStore
}

func New() *Store {
	return &Store{
		User:        user.New(),
		SwapRequest: swaprequest.New(),
	}
}

package app

import "wordvault/internal/domain"

type App struct {
	Collections domain.CollectionService
}

func New(collections domain.CollectionService) *App {
	return &App{Collections: collections}
}

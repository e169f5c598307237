package handlers

import (
	"sync"

	"resale/internal/currency"
	"resale/internal/search"
	"resale/internal/services"
)

// Marketplace is the upstream API the handlers read lists from and write edits to.
type Marketplace interface {
	services.ListGateway
	services.ProductOfferLists
}

// Deps are the shared collaborators handlers build their services from.
type Deps struct {
	Currencies  *currency.Table
	Searcher    search.Searcher
	IndexBase   string
	Marketplace Marketplace
	Edits       services.BulkEditStore
}

var (
	depsMu sync.RWMutex
	deps   Deps
)

// Configure installs the collaborators; call it before serving.
func Configure(d Deps) {
	depsMu.Lock()
	defer depsMu.Unlock()
	deps = d
}

func current() Deps {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return deps
}

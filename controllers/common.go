package controllers

import (
	"time"

	"veyra-io/estates-web/backend"
	"veyra-io/estates-web/catalog"
)

// API and Listings are the per-process collaborators every handler shares:
// the external-API client and the latest-fetch snapshot of the catalog.
var (
	API      *backend.Client
	Listings = catalog.NewStore()
)

// RequestTimeout bounds every backend call made on behalf of a page view.
const RequestTimeout = 50 * time.Second

// Init wires the backend client before routes are served.
func Init(client *backend.Client) {
	API = client
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"github.com/MKhiriev/go-courses-api/internal/adapter"
	"github.com/MKhiriev/go-courses-api/internal/config"
	"github.com/MKhiriev/go-courses-api/internal/logger"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command line in args and returns once it completes.
	Run(args []string) error
}

// AdapterFactory builds the API adapter once flags have been parsed.
type AdapterFactory func(cfg config.Adapter, logger *logger.Logger) (adapter.APIAdapter, error)

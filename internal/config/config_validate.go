// Cinegraph - Graph-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinegraph

package config

import (
	"fmt"

	"github.com/tomtom215/cinegraph/internal/logging"
	"github.com/tomtom215/cinegraph/internal/validation"
)

// Validate runs the struct tag rules and then the checks that span fields.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateSnapshot(); err != nil {
		return err
	}
	return c.validateNeo4j()
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateSnapshot() error {
	// load_on_start and save_on_stop are ignored with backend none.
	if !c.Snapshot.Enabled() {
		return nil
	}
	if c.Snapshot.Path == "" {
		return fmt.Errorf("SNAPSHOT_PATH is required when SNAPSHOT_BACKEND=%s", c.Snapshot.Backend)
	}
	return nil
}

func (c *Config) validateNeo4j() error {
	if !c.Neo4j.Enabled {
		return nil
	}
	if c.Neo4j.URI == "" {
		return fmt.Errorf("NEO4J_URI is required when NEO4J_ENABLED=true")
	}
	if err := validateNeo4jURI(c.Neo4j.URI); err != nil {
		return fmt.Errorf("NEO4J_URI is invalid: %w", err)
	}
	if c.Neo4j.Username == "" {
		return fmt.Errorf("NEO4J_USER is required when NEO4J_ENABLED=true")
	}
	return nil
}

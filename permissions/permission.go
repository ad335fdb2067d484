// Package permissions holds the embedded route table read by the auth and RBAC middleware.
package permissions

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
)

//go:embed permissions.json
var permissionsData []byte

// Permission is one route entry keyed by chi route pattern and method. Skip marks a
// public route; Permissions lists the roles allowed to call it.
type Permission struct {
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Permissions []string `json:"permissions"`
	Skip        bool     `json:"skip"`
}

// Allows reports whether role may call the route. A route without roles admits anyone
// who passed authentication.
func (p Permission) Allows(role string) bool {
	return p.Skip || len(p.Permissions) == 0 || slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`
}

// FindPermissions returns the zero Permission when the route has no entry.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	for _, endpoint := range r.Endpoints {
		if endpoint.Path == path && strings.EqualFold(endpoint.Method, method) {
			return endpoint
		}
	}

	return Permission{}
}

// Parse decodes a route table and rejects duplicate path and method pairs.
func Parse(data []byte) (*PermissionData, error) {
	var table PermissionData

	if err := json.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("decoding permissions: %w", err)
	}

	seen := make(map[string]struct{}, len(table.Endpoints))

	for _, endpoint := range table.Endpoints {
		key := strings.ToUpper(endpoint.Method) + " " + endpoint.Path
		if _, dup := seen[key]; dup {
			return nil, fmt.Errorf("duplicate permission entry %s", key)
		}

		seen[key] = struct{}{}
	}

	return &table, nil
}

// Get loads the embedded route table. A broken table yields nil, which RBAC treats as deny-all.
func Get() *PermissionData {
	table, err := Parse(permissionsData)
	if err != nil {
		log.Error().Err(err).Msg("failed to load embedded permissions")

		return nil
	}

	log.Info().Int("endpoints", len(table.Endpoints)).Msg("loaded embedded permissions")

	return table
}

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

type Permission struct {
	Permissions []string `json:"permissions"`
	Path        string   `json:"path"`
	Method      string   `json:"method"`
	Skip        bool     `json:"skip"`
}

// Found reports whether the lookup matched a configured endpoint.
func (p Permission) Found() bool {
	return p.Path != ""
}

// Allows reports whether role may call the endpoint. Public endpoints allow everyone,
// endpoints without roles allow nobody.
func (p Permission) Allows(role string) bool {
	return p.Skip || slices.Contains(p.Permissions, role)
}

type PermissionData struct {
	Endpoints []Permission `json:"endpoints"`
	Skip      bool         `json:"skip"`

	index map[string]Permission
}

func endpointKey(method, path string) string {
	return strings.ToUpper(method) + " " + strings.TrimSuffix(path, "/")
}

// FindPermissions looks up the rule for a route pattern. A trailing slash is ignored.
func (r *PermissionData) FindPermissions(path, method string) Permission {
	if r.index != nil {
		return r.index[endpointKey(method, path)]
	}

	key := endpointKey(method, path)
	for _, endpoint := range r.Endpoints {
		if endpointKey(endpoint.Method, endpoint.Path) == key {
			return endpoint
		}
	}

	return Permission{}
}

// Parse decodes a permissions document and indexes it by method and path.
func Parse(raw []byte) (*PermissionData, error) {
	var permissions PermissionData

	if err := json.Unmarshal(raw, &permissions); err != nil {
		return nil, fmt.Errorf("decoding permissions: %w", err)
	}

	permissions.index = make(map[string]Permission, len(permissions.Endpoints))

	for _, endpoint := range permissions.Endpoints {
		key := endpointKey(endpoint.Method, endpoint.Path)
		if _, dup := permissions.index[key]; dup {
			return nil, fmt.Errorf("duplicate permission for %s", key)
		}

		permissions.index[key] = endpoint
	}

	return &permissions, nil
}

// Get loads the embedded permissions. A broken document is a build defect, so it stops startup.
func Get() *PermissionData {
	permissions, err := Parse(permissionsData)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to decode embedded permissions")
	}

	log.Info().Int("endpoints", len(permissions.Endpoints)).Msg("Successfully loaded embedded permissions")

	return permissions
}

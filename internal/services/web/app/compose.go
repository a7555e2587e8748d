// Package app composes web modules into the root HTTP handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/covidtracker/internal/services/web/module"
)

// ComposeInput carries the modules to mount.
type ComposeInput struct {
	Modules []module.Module
}

// Compose builds a root HTTP handler from modules. Subtree prefixes also
// answer on their slashless form.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, prefix, err := resolveMount(feature)
		if err != nil {
			return nil, err
		}
		patterns := []string{prefix}
		if alias := slashlessPrefixAlias(prefix); alias != "" {
			patterns = append(patterns, alias)
		}
		for _, alias := range mount.Aliases {
			alias = strings.TrimSpace(alias)
			if !strings.HasPrefix(alias, "/") {
				return nil, fmt.Errorf("mount module %q has invalid alias %q", feature.ID(), alias)
			}
			patterns = append(patterns, alias)
		}
		for _, pattern := range patterns {
			if err := mountPattern(root, feature, mount.Handler, pattern, seen); err != nil {
				return nil, err
			}
		}
	}
	return root, nil
}

func mountPattern(root *http.ServeMux, feature module.Module, handler http.Handler, pattern string, seen map[string]string) error {
	if previous, ok := seen[pattern]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), pattern, previous)
	}
	seen[pattern] = feature.ID()
	root.Handle(pattern, handler)
	return nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if err := validatePrefix(mount.Prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, mount.Prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}

func slashlessPrefixAlias(prefix string) string {
	if !strings.HasSuffix(prefix, "/") {
		return ""
	}
	return strings.TrimSuffix(prefix, "/")
}
